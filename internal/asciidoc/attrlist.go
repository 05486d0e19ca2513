package asciidoc

import "strings"

// parseAttrList parses an attribute-list body (`alt,width,height,#id,.role,
// %option,key=value`) into an AttributeList. Shorthand `#id` / `.role` /
// `%option` entries are recorded under the reserved named keys "id" (last
// one wins), "role" (space-joined, first-occurrence order), and "options"
// (comma-joined), matching the grammar of §4.6's attrlist.
func parseAttrList(raw string) *AttributeList {
	list := NewAttributeList()
	applyInlineAttrList(list, raw)

	return list
}

// applyInlineAttrList parses raw into list in place, used both for inline
// macro attribute lists and block macro attribute lists.
func applyInlineAttrList(list *AttributeList, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	var roles []string
	var opts []string
	for _, part := range splitTopLevelCommas(raw) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.HasPrefix(part, "#"):
			list.Set("id", part[1:])
		case strings.HasPrefix(part, "."):
			roles = append(roles, part[1:])
		case strings.HasPrefix(part, "%"):
			opts = append(opts, part[1:])
		case strings.Contains(part, "="):
			kv := strings.SplitN(part, "=", 2)
			name := strings.TrimSpace(kv[0])
			val := unquoteAttrValue(strings.TrimSpace(kv[1]))
			list.Set(name, val)
		default:
			list.Positional = append(list.Positional, part)
		}
	}
	if len(roles) > 0 {
		list.Set("role", strings.Join(roles, " "))
	}
	if len(opts) > 0 {
		list.Set("options", strings.Join(opts, ","))
	}
}

func unquoteAttrValue(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
