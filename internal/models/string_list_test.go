package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type metalDoc struct {
	MetalTypes StringList `bson:"metal_types"`
}

func TestStringListDecodesArray(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"metal_types": []string{"gold", "silver"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc metalDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.MetalTypes) != 2 || doc.MetalTypes[0] != "gold" || doc.MetalTypes[1] != "silver" {
		t.Errorf("unexpected result: %v", doc.MetalTypes)
	}
}

func TestStringListDecodesLegacyString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"metal_types": " rose-gold "})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc metalDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.MetalTypes) != 1 || doc.MetalTypes[0] != "rose-gold" {
		t.Errorf("expected single trimmed entry, got %v", doc.MetalTypes)
	}
}

func TestStringListDecodesNullAndEmptyString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"metal_types": nil})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc metalDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if doc.MetalTypes != nil {
		t.Errorf("expected nil for bson null, got %v", doc.MetalTypes)
	}

	raw, err = bson.Marshal(bson.M{"metal_types": "   "})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal blank: %v", err)
	}
	if doc.MetalTypes == nil || len(doc.MetalTypes) != 0 {
		t.Errorf("expected empty list for blank string, got %v", doc.MetalTypes)
	}
}

func TestStringListMarshalsAsArray(t *testing.T) {
	raw, err := bson.Marshal(metalDoc{MetalTypes: StringList{"gold"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out struct {
		MetalTypes []string `bson:"metal_types"`
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.MetalTypes) != 1 || out.MetalTypes[0] != "gold" {
		t.Errorf("expected array round-trip, got %v", out.MetalTypes)
	}
}
