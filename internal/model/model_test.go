package model

import (
	"testing"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{12345, "12.3K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{1550000, "1.6M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCount(tt.input); got != tt.want {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestItem_SizeGB(t *testing.T) {
	tests := []struct {
		size string
		want float64
	}{
		{"12 GB", 12},
		{"1 GB", 1},
		{"50GB", 50},
		{"2.5 GB", 2.5},
		{"500 MB", 0.5},
		{"", 0},
		{"big", 0},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			item := Item{Size: tt.size}
			if got := item.SizeGB(); got != tt.want {
				t.Errorf("SizeGB() for %q = %g, want %g", tt.size, got, tt.want)
			}
		})
	}
}

func TestItem_SizeBytes(t *testing.T) {
	tests := []struct {
		size string
		want uint64
	}{
		{"12 GB", 12_000_000_000},
		{"500 MB", 500_000_000},
		{"1 GiB", 1 << 30},
		{"nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			item := Item{Size: tt.size}
			if got := item.SizeBytes(); got != tt.want {
				t.Errorf("SizeBytes() for %q = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestItem_HasGenre(t *testing.T) {
	item := Item{Genres: []string{"FPS", "Terror"}}

	if !item.HasGenre("Terror") {
		t.Error("HasGenre(Terror) should be true")
	}
	if item.HasGenre("Puzzle") {
		t.Error("HasGenre(Puzzle) should be false")
	}
}

func TestItem_PriceLabel(t *testing.T) {
	free := Item{Price: 0}
	if !free.IsFree() {
		t.Error("IsFree() should be true for price 0")
	}
	if got := free.PriceLabel(); got != "Descargar Gratis" {
		t.Errorf("PriceLabel() = %q", got)
	}

	paid := Item{Price: 40}
	if got := paid.PriceLabel(); got != "Comprar por $40" {
		t.Errorf("PriceLabel() = %q", got)
	}
}

func TestSpec_Fields(t *testing.T) {
	spec := Spec{OS: "Windows 10", Processor: "i5", Memory: "8 GB", Graphics: "GTX 970", Storage: "40 GB"}
	fields := spec.Fields()

	if len(fields) != 5 {
		t.Fatalf("got %d fields, want 5", len(fields))
	}
	if fields[0] != [2]string{"os", "Windows 10"} {
		t.Errorf("first field = %v", fields[0])
	}
	if fields[4] != [2]string{"storage", "40 GB"} {
		t.Errorf("last field = %v", fields[4])
	}
}
