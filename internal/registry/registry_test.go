package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

type stubDemo struct {
	id string
}

func (d *stubDemo) ID() string                           { return d.id }
func (d *stubDemo) Title() string                        { return "Stub " + d.id }
func (d *stubDemo) Pattern() string                      { return "Stub" }
func (d *stubDemo) Reset(core.RuntimeConfig)             {}
func (d *stubDemo) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (d *stubDemo) Render(*core.Screen)                  {}
func (d *stubDemo) State() core.DemoState                { return core.DemoState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-test-b", func() Demo { return &stubDemo{id: "zz-test-b"} })
	Register("zz-test-a", func() Demo { return &stubDemo{id: "zz-test-a"} })

	if !Exists("zz-test-a") {
		t.Error("Exists() = false for registered demo")
	}
	if Exists("zz-test-missing") {
		t.Error("Exists() = true for unknown demo")
	}

	d, err := Create("zz-test-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if d.ID() != "zz-test-a" {
		t.Errorf("ID() = %q, expected %q", d.ID(), "zz-test-a")
	}

	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("Create() of unknown demo should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-test-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID || info.Pattern != "Stub" {
				t.Errorf("List() info = %+v, expected stub metadata", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-test-a" || ids[1] != "zz-test-b" {
		t.Errorf("List() ids = %v, expected sorted [zz-test-a zz-test-b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Demo { return &stubDemo{id: "zz-test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()
	Register("zz-test-dup", func() Demo { return &stubDemo{id: "zz-test-dup"} })
}
