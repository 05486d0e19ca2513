package asciidoc

import (
	"encoding/json"
	"testing"
)

func TestToJSONPlainText(t *testing.T) {
	n := newPlainText(0, 5, []byte("hello"))
	raw, err := ToJSON(n)
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal ToJSON output: %v", err)
	}
	if decoded["name"] != "text" {
		t.Errorf("expected name 'text', got %v", decoded["name"])
	}
	if decoded["text"] != "hello" {
		t.Errorf("expected text 'hello', got %v", decoded["text"])
	}
	loc, ok := decoded["location"].(map[string]any)
	if !ok {
		t.Fatalf("expected location object, got %T", decoded["location"])
	}
	if loc["start"].(float64) != 0 || loc["end"].(float64) != 5 {
		t.Errorf("unexpected location: %v", loc)
	}
}

func TestToJSONCalloutRefUsesCanonicalName(t *testing.T) {
	n := newInline(NodeCalloutRef, 0, 3, []byte("<1>"), nil)
	n.number = 1
	n.rehash()

	raw, err := ToJSON(n)
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded["name"] != "callout_reference" {
		t.Errorf("expected name 'callout_reference', got %v", decoded["name"])
	}
	if decoded["number"].(float64) != 1 {
		t.Errorf("expected number 1, got %v", decoded["number"])
	}
}

func TestToJSONSectionIncludesLevelAndChildren(t *testing.T) {
	heading := []Node{newPlainText(2, 6, []byte("Intro"))}
	sec := newBlock(NodeSection, 0, 20, []byte("== Intro\ntext"), []Node{newPlainText(9, 13, []byte("text"))}, BlockMetadata{NamedAttrs: NewAttributeList()})
	sec.level = 1
	sec.heading = heading
	sec.rehash()

	raw, err := ToJSON(sec)
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded["level"].(float64) != 1 {
		t.Errorf("expected level 1, got %v", decoded["level"])
	}
	children, ok := decoded["children"].([]any)
	if !ok || len(children) != 1 {
		t.Fatalf("expected 1 child, got %v", decoded["children"])
	}
}
