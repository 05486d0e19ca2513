package asciidoc

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var includeDirectiveRe = regexp.MustCompile(`^include::([^\[]+)\[(.*)\]\s*$`)
var tagLineRe = regexp.MustCompile(`^\s*//\s*(tag|end)::([^\[]+)\[\]\s*$`)

// resolveIncludes is the Include Resolver of §4.3. It reads rootSource as
// rootPath, recursively splicing any `include::` directive line it finds,
// applying lines=/tags=/leveloffset= and safe-mode gating, and
// returns the fully spliced text plus a SourceMap tying every byte back
// to the file and offset it came from. An encoding= attribute is accepted
// but not applied: included bytes are spliced as read.
func resolveIncludes(rootSource []byte, rootPath string, opts ParserOptions, diags *Diagnostics) ([]byte, *SourceMap) {
	b := NewBuilder([]string{rootPath})
	r := &includeResolver{opts: opts, diags: diags, builder: b}
	diags.registerFileText(0, rootSource)
	out := r.splice(rootSource, 0, filepath.Dir(rootPath), map[string]bool{rootPath: true})

	return out, b.Build()
}

type includeResolver struct {
	opts    ParserOptions
	diags   *Diagnostics
	builder *Builder
}

// splice processes source (belonging to file, whose containing directory
// is dir), expanding include directives line by line, and returns the
// resulting bytes. visiting tracks the chain of files currently being
// spliced, to detect IncludeCircular.
func (r *includeResolver) splice(source []byte, file FileID, dir string, visiting map[string]bool) []byte {
	var out bytes.Buffer
	lines := splitKeepEnds(source)
	offset := 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")
		if m := includeDirectiveRe.FindStringSubmatch(trimmed); m != nil {
			spliced, ok := r.resolveOne(m[1], m[2], file, offset, dir, visiting)
			if ok {
				out.Write(spliced)
			} else {
				placeholder := []byte("[include unresolved]\n")
				out.Write(placeholder)
				r.builder.AddCollapsed(len(placeholder), file, offset)
			}
			offset += len(line)

			continue
		}
		out.WriteString(line)
		r.builder.AddLinear(len(line), file, offset)
		offset += len(line)
	}

	return out.Bytes()
}

// resolveOne resolves a single include::target[attrs] directive found at
// directiveOffset (the directive line's start) within fromFile.
func (r *includeResolver) resolveOne(target, attrRaw string, fromFile FileID, directiveOffset int, dir string, visiting map[string]bool) ([]byte, bool) {
	line, col := r.diags.Locate(fromFile, directiveOffset)
	if r.opts.SafeMode == SafeModeSecure {
		r.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticIncludeError, File: fromFile,
			Line: line, Column: col,
			Message: "include::" + target + "[] disabled: safe mode is secure"})

		return nil, false
	}

	attrs := parseSimpleAttrList(attrRaw)
	resolvedPath, violation := r.resolvePath(dir, target)
	if violation != "" {
		r.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticIncludeError, File: fromFile,
			Line: line, Column: col,
			Message: "include::" + target + "[]: " + violation})

		return nil, false
	}

	if visiting[resolvedPath] {
		r.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticIncludeError, File: fromFile,
			Line: line, Column: col,
			Message: "include::" + target + "[]: circular include"})

		return nil, false
	}

	data, err := afReadFile(r.opts.Filesystem, resolvedPath)
	if err != nil {
		r.diags.Add(Diagnostic{Severity: SeverityWarning, Kind: DiagnosticIncludeError, File: fromFile,
			Line: line, Column: col,
			Message: "include::" + target + "[]: target missing: " + err.Error()})

		return nil, false
	}

	if tg, ok := attrs["tags"]; ok {
		data = filterTags(data, tg)
	} else if tg, ok := attrs["tag"]; ok {
		data = filterTags(data, tg)
	}
	data = stripTagMarkers(data)
	if lr, ok := attrs["lines"]; ok {
		data = filterLines(data, lr)
	}

	childFile := r.builder.RegisterFile(resolvedPath)
	r.diags.registerFileText(childFile, data)
	nextVisiting := make(map[string]bool, len(visiting)+1)
	for k, v := range visiting {
		nextVisiting[k] = v
	}
	nextVisiting[resolvedPath] = true

	lo, hasLevelOffset := attrs["leveloffset"]
	var prefix []byte
	if hasLevelOffset {
		prefix = []byte(":leveloffset: " + lo + "\n")
		r.builder.AddCollapsed(len(prefix), fromFile, directiveOffset)
	}

	spliced := r.splice(data, childFile, filepath.Dir(resolvedPath), nextVisiting)

	if hasLevelOffset {
		suffix := []byte(":leveloffset!:\n")
		r.builder.AddCollapsed(len(suffix), fromFile, directiveOffset)
		spliced = append(append(prefix, spliced...), suffix...)
	}

	return spliced, true
}

// resolvePath applies safe-mode gating to target, resolved relative to
// dir (the including file's directory, per §4.3: "relative to the
// including file, not the root document"). Returns ("", reason) on a
// safe-mode violation.
func (r *includeResolver) resolvePath(dir, target string) (string, string) {
	if filepath.IsAbs(target) {
		if r.opts.SafeMode >= SafeModeSafe {
			return "", "absolute paths are not permitted under safe mode " + r.opts.SafeMode.String()
		}

		return filepath.Clean(target), ""
	}

	joined := filepath.Join(dir, target)
	clean := filepath.Clean(joined)

	switch r.opts.SafeMode {
	case SafeModeUnsafe:
		return clean, ""
	case SafeModeSafe:
		if r.opts.RootDir != "" && !withinRoot(clean, r.opts.RootDir) {
			return "", "path escapes the document root"
		}

		return clean, ""
	case SafeModeServer:
		if strings.Contains(target, "..") {
			return "", "parent-directory traversal is not permitted under safe mode server"
		}
		if r.opts.RootDir != "" && !withinRoot(clean, r.opts.RootDir) {
			return "", "path escapes the document root"
		}

		return clean, ""
	default:
		return "", "includes are disabled"
	}
}

func withinRoot(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func afReadFile(fs FS, path string) ([]byte, error) {
	if fs == nil {
		fs = defaultFS()
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// parseSimpleAttrList splits an attribute-list body on top-level commas
// and each entry on the first '=', ignoring positional entries without
// a value.
func parseSimpleAttrList(raw string) map[string]string {
	out := make(map[string]string)
	for _, part := range splitTopLevelCommas(raw) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '='); i >= 0 {
			key := strings.TrimSpace(part[:i])
			val := strings.Trim(strings.TrimSpace(part[i+1:]), `"`)
			out[key] = val
		}
	}

	return out
}

func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	start := 0
	inQuote := false
	for i, r := range s {
		switch r {
		case '"':
			inQuote = !inQuote
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 && !inQuote {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])

	return out
}

func stripTagMarkers(data []byte) []byte {
	var out bytes.Buffer
	for _, line := range splitKeepEnds(data) {
		if tagLineRe.MatchString(strings.TrimRight(line, "\r\n")) {
			continue
		}
		out.WriteString(line)
	}

	return out.Bytes()
}

// filterLines applies a `lines=` selector: comma/semicolon-delimited
// 1-based ranges with `..` endpoints and an optional open `..-1` end.
func filterLines(data []byte, spec string) []byte {
	lines := splitKeepEnds(data)
	keep := make([]bool, len(lines)+1)
	spec = strings.NewReplacer(";", ",").Replace(spec)
	for _, rng := range strings.Split(spec, ",") {
		rng = strings.TrimSpace(rng)
		if rng == "" {
			continue
		}
		lo, hi := parseLineRange(rng, len(lines))
		for i := lo; i <= hi && i <= len(lines); i++ {
			if i >= 1 {
				keep[i] = true
			}
		}
	}

	var out bytes.Buffer
	for i, line := range lines {
		if keep[i+1] {
			out.WriteString(line)
		}
	}

	return out.Bytes()
}

func parseLineRange(rng string, total int) (int, int) {
	if i := strings.Index(rng, ".."); i >= 0 {
		lo, _ := strconv.Atoi(strings.TrimSpace(rng[:i]))
		hiRaw := strings.TrimSpace(rng[i+2:])
		if hiRaw == "-1" {
			return lo, total
		}
		hi, err := strconv.Atoi(hiRaw)
		if err != nil {
			return lo, lo
		}

		return lo, hi
	}
	n, _ := strconv.Atoi(rng)

	return n, n
}

// filterTags applies a `tags=`/`tag=` selector with wildcards `*`/`**`
// and negation `!name` over the tag:: / end:: regions previously located
// by stripTagMarkers's caller (the markers are stripped, so we re-scan
// here before stripping in the real pipeline). In this implementation the
// selector runs before marker stripping to see tag boundaries.
func filterTags(data []byte, spec string) []byte {
	selectors := strings.NewReplacer(";", ",").Replace(spec)
	wanted := make(map[string]bool)
	negated := make(map[string]bool)
	wildcard := false
	for _, s := range strings.Split(selectors, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch {
		case strings.HasPrefix(s, "!"):
			negated[s[1:]] = true
		case s == "*" || s == "**":
			wildcard = true
		default:
			wanted[s] = true
		}
	}

	var out bytes.Buffer
	active := map[string]bool{}
	anyActive := func() bool {
		for _, v := range active {
			if v {
				return true
			}
		}

		return false
	}
	inWanted := func(name string) bool {
		if negated[name] {
			return false
		}
		if wanted[name] {
			return true
		}

		return wildcard
	}

	for _, line := range splitKeepEnds(data) {
		trimmed := strings.TrimRight(line, "\r\n")
		if m := tagLineRe.FindStringSubmatch(trimmed); m != nil {
			name := m[2]
			if m[1] == "tag" {
				active[name] = inWanted(name)
			} else {
				active[name] = false
			}

			continue
		}
		if len(wanted) == 0 && !wildcard && len(negated) == 0 {
			out.WriteString(line)

			continue
		}
		if anyActive() {
			out.WriteString(line)
		}
	}

	return out.Bytes()
}

// splitKeepEnds splits data into lines, each retaining its trailing
// newline (the final line may lack one).
func splitKeepEnds(data []byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			out = append(out, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		out = append(out, string(data[start:]))
	}

	return out
}
