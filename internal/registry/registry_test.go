package registry

import (
	"testing"

	"github.com/vovakirdan/tui-planetoids/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string { return g.id }
func (g fakeGame) Title() string { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig) {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen) {}
func (g fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game { return fakeGame{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID = %q", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = info.Title == "Fake zz-fake"
		}
	}
	if !found {
		t.Error("List should include the game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("unknown game should fail")
	}
	if Exists("no-such-game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
}
