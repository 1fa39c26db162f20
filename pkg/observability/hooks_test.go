package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "Global Term/Feature Importances")
	r.OnRenderComplete(ctx, "Global Term/Feature Importances", 1024, time.Second, nil)
	r.OnUnsupported(ctx, "dash.Component")

	d := NoopDisplayHooks{}
	d.OnDisplay(ctx, "notebook", 1024, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Display().(NoopDisplayHooks); !ok {
		t.Error("Display() should return NoopDisplayHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customDisplay := &testDisplayHooks{}
	SetDisplayHooks(customDisplay)
	if Display() != customDisplay {
		t.Error("SetDisplayHooks should set custom hooks")
	}

	// nil is ignored
	SetRenderHooks(nil)
	if Render() != customRender {
		t.Error("SetRenderHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Display().(NoopDisplayHooks); !ok {
		t.Error("Reset() should restore NoopDisplayHooks")
	}
}

type testRenderHooks struct{ NoopRenderHooks }

type testDisplayHooks struct{ NoopDisplayHooks }
