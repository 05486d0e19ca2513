package asciidoc

import "encoding/json"

// ToJSON renders node as the canonical JSON AST export of §6: every node
// becomes an object with "name" (the NodeType's lower_snake variant name)
// and "location" ({"start":n,"end":n}), plus variant-specific fields. The
// shape is built explicitly by this walker rather than derived from Go
// struct tags, so internal field names never leak into the wire format.
func ToJSON(node Node) ([]byte, error) {
	return json.Marshal(nodeToMap(node))
}

func location(n Node) map[string]any {
	start, end := n.Span()

	return map[string]any{"start": start, "end": end}
}

func childMaps(n Node) []map[string]any {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]map[string]any, len(children))
	for i, c := range children {
		out[i] = nodeToMap(c)
	}

	return out
}

func nodeToMap(node Node) map[string]any {
	m := map[string]any{
		"name":     node.Type().String(),
		"location": location(node),
	}

	switch n := node.(type) {
	case *Document:
		m["children"] = childMaps(n)
		m["doctype"] = n.Doctype().String()
		if t := n.Title(); t != nil {
			m["title"] = map[string]any{
				"heading":  childMapsOf(t.Heading),
				"subtitle": childMapsOf(t.Subtitle),
			}
		}
		if len(n.Authors()) > 0 {
			authors := make([]map[string]any, len(n.Authors()))
			for i, a := range n.Authors() {
				authors[i] = map[string]any{
					"first_name": a.FirstName, "middle_name": a.MiddleName,
					"last_name": a.LastName, "email": a.Email,
				}
			}
			m["authors"] = authors
		}
		if r := n.Revision(); r != nil {
			m["revision"] = map[string]any{"number": r.Number, "date": r.Date, "remark": r.Remark}
		}

	case *Table:
		m["children"] = childMaps(n)
		addBlockMetadata(m, n.Metadata())
		cols := make([]map[string]any, len(n.Columns()))
		for i, c := range n.Columns() {
			cols[i] = map[string]any{
				"width": c.Width, "halign": string(c.HAlign), "valign": string(c.VAlign), "style": string(c.Style),
			}
		}
		m["columns"] = cols

	case *TableRow:
		m["children"] = childMaps(n)

	case *TableCell:
		m["children"] = childMaps(n)
		m["colspan"] = n.Colspan()
		m["rowspan"] = n.Rowspan()
		m["halign"] = string(n.HAlign())
		m["valign"] = string(n.VAlign())
		m["style"] = string(n.Style())
		m["is_subdocument"] = n.IsSubdocument()

	case *blockNode:
		m["children"] = childMaps(n)
		addBlockMetadata(m, n.Metadata())
		switch n.Type() {
		case NodeSection:
			m["level"] = n.Level()
			m["heading"] = childMapsOf(n.Heading())
		case NodeList:
			m["list_kind"] = n.ListKind()
		case NodeListItem, NodeDescriptionListItem:
			m["marker"] = n.Marker()
			m["principal"] = childMapsOf(n.Principal())
		case NodeAdmonition:
			m["admonition_kind"] = n.AdmonitionKind()
		case NodeListing, NodeLiteral:
			if len(n.Language()) > 0 {
				m["language"] = string(n.Language())
			}
		case NodeCalloutListItem:
			m["callout_number"] = n.CalloutNumber()
		case NodePlaceholder:
			m["placeholder_reason"] = n.PlaceholderReason()
		}

	case *inlineNode:
		if n.Target() != "" {
			m["target"] = n.Target()
		}
		if n.Type() == NodeIndexTerm {
			primary, secondary, tertiary := n.IndexTerms()
			m["primary"] = primary
			if secondary != "" {
				m["secondary"] = secondary
			}
			if tertiary != "" {
				m["tertiary"] = tertiary
			}
		}
		if len(n.AltText()) > 0 {
			m["alt_text"] = string(n.AltText())
		}
		if a := n.Attributes(); a != nil {
			m["attributes"] = attributeListToMap(a)
		}
		if n.Number() != 0 {
			m["number"] = n.Number()
		}
		if n.Type() == NodeRaw {
			m["substitutions"] = substitutionSpecToMap(n.Substitutions())
		}
		if children := childMaps(n); children != nil {
			m["children"] = children
		} else if n.Type() == NodePlainText || n.Type() == NodeRaw {
			m["text"] = string(n.Source())
		}
	}

	return m
}

func childMapsOf(nodes []Node) []map[string]any {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		out[i] = nodeToMap(n)
	}

	return out
}

func addBlockMetadata(m map[string]any, meta *BlockMetadata) {
	if meta.ID != "" {
		m["id"] = meta.ID
	}
	if meta.Title != nil {
		m["title"] = childMapsOf(meta.Title)
	}
	if len(meta.Roles) > 0 {
		m["roles"] = meta.Roles
	}
	if len(meta.Options) > 0 {
		opts := make([]string, 0, len(meta.Options))
		for name, on := range meta.Options {
			if on {
				opts = append(opts, name)
			}
		}
		m["options"] = opts
	}
	if meta.Style != "" {
		m["style"] = meta.Style
	}
	if meta.NamedAttrs != nil && len(meta.NamedAttrs.Names()) > 0 {
		m["attributes"] = attributeListToMap(meta.NamedAttrs)
	}
	m["substitutions"] = substitutionSpecToMap(meta.Substitutions)
}

func attributeListToMap(a *AttributeList) map[string]any {
	out := map[string]any{}
	if len(a.Positional) > 0 {
		out["positional"] = a.Positional
	}
	named := map[string]string{}
	for _, name := range a.Names() {
		v, _ := a.Get(name)
		named[name] = v
	}
	if len(named) > 0 {
		out["named"] = named
	}

	return out
}

func substitutionSpecToMap(s SubstitutionSpec) map[string]any {
	out := map[string]any{}
	if len(s.Replace) > 0 {
		out["replace"] = s.Replace
	}
	if len(s.Add) > 0 {
		out["add"] = s.Add
	}
	if len(s.Remove) > 0 {
		out["remove"] = s.Remove
	}

	return out
}
