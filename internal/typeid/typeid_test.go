package typeid

import (
	"strings"
	"testing"
)

func TestNewIDs(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{name: "studio", gen: NewStudioID, prefix: PrefixStudio},
		{name: "export", gen: NewExportID, prefix: PrefixExport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.gen()
			if !strings.HasPrefix(id, tt.prefix+"_") {
				t.Errorf("expected prefix %q, got %q", tt.prefix, id)
			}
			if err := Validate(id, tt.prefix); err != nil {
				t.Errorf("generated id failed validation: %v", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	if err := Validate(NewStudioID(), PrefixExport); err == nil {
		t.Error("expected prefix mismatch to fail")
	}
	if err := Validate("not-an-id", PrefixStudio); err == nil {
		t.Error("expected malformed id to fail")
	}
	if NewExportID() == NewExportID() {
		t.Error("ids should be unique")
	}
}
