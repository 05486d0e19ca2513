package asciidoc

import "strings"

// attrEntry distinguishes an attribute that was explicitly unset
// (`:name!:`) from one that was never set at all.
type attrEntry struct {
	value string
	unset bool
}

// AttributeStore is the append-ordered, case-folded mapping from
// attribute name to resolved value described in §4.2. Writes overwrite;
// reads for `{name}` references always see the current value. Values
// containing `{other}` are resolved at definition time via
// expandDefinitionTime, not at every later reference.
type AttributeStore struct {
	order   []string
	entries map[string]attrEntry
}

// NewAttributeStore returns a store seeded with the built-in attributes
// for doctype and the character-replacement entities.
func NewAttributeStore(doctype Doctype) *AttributeStore {
	s := &AttributeStore{entries: make(map[string]attrEntry)}
	s.Set("doctype", doctype.String())
	for name, value := range builtinCharacterAttributes {
		s.Set(name, value)
	}

	return s
}

var builtinCharacterAttributes = map[string]string{
	"lt":    "<",
	"gt":    ">",
	"amp":   "&",
	"empty": "",
	"blank": "",
	"sp":    " ",
	"nbsp":  " ",
	"cxx":   "C++",
	"pp":    "++",
}

// Set records name -> value, case-folding name to lowercase. Any
// `{other}` reference inside value is resolved immediately, against the
// store's current contents, per §3's "resolved at definition time" rule.
func (s *AttributeStore) Set(name, value string) {
	name = strings.ToLower(name)
	value = s.expandDefinitionTime(value, 0)
	if _, seen := s.entries[name]; !seen {
		s.order = append(s.order, name)
	}
	s.entries[name] = attrEntry{value: value}
}

// Unset records an explicit unset marker for name (`:name!:`).
func (s *AttributeStore) Unset(name string) {
	name = strings.ToLower(name)
	if _, seen := s.entries[name]; !seen {
		s.order = append(s.order, name)
	}
	s.entries[name] = attrEntry{unset: true}
}

// Get returns the current value of name and whether it is set (neither
// unset nor never-defined).
func (s *AttributeStore) Get(name string) (string, bool) {
	e, ok := s.entries[strings.ToLower(name)]
	if !ok || e.unset {
		return "", false
	}

	return e.value, true
}

// IsSet reports whether name currently resolves to a value.
func (s *AttributeStore) IsSet(name string) bool {
	_, ok := s.Get(name)

	return ok
}

// Names returns every attribute name ever written, in first-insertion
// order (unset entries included).
func (s *AttributeStore) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

const maxDefinitionTimeExpansionDepth = 16

// expandDefinitionTime resolves `{other}` references inside value against
// the store's current contents, expanding each substituted value in turn
// up to maxDefinitionTimeExpansionDepth levels of nesting.
func (s *AttributeStore) expandDefinitionTime(value string, depth int) string {
	if depth >= maxDefinitionTimeExpansionDepth || !strings.ContainsRune(value, '{') {
		return value
	}
	var b strings.Builder
	i := 0
	for i < len(value) {
		if value[i] == '{' {
			if end := strings.IndexByte(value[i+1:], '}'); end >= 0 {
				name := value[i+1 : i+1+end]
				if v, ok := s.Get(name); ok {
					b.WriteString(s.expandDefinitionTime(v, depth+1))
					i = i + 1 + end + 1

					continue
				}
			}
		}
		b.WriteByte(value[i])
		i++
	}

	return b.String()
}
