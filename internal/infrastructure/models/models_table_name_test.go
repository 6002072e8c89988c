package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (Sequence{}).TableName(); got != "id_sequences" {
		t.Fatalf("unexpected Sequence table name: %s", got)
	}
}

func TestAllModelsListed(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("expected 9 models, got %d", len(all))
	}
	if _, ok := all[0].(*Sequence); !ok {
		t.Fatalf("sequences must migrate first, got %T", all[0])
	}
}
