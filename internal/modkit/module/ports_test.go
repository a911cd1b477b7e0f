package module

import (
	phttp "reposcout/internal/platform/net/http"
	"testing"
)

type pinger interface{ Ping() string }

type pingImpl struct{}

func (pingImpl) Ping() string { return "pong" }

type fakeModule struct {
	ports any
}

func (fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any             { return m.ports }
func (fakeModule) Name() string             { return "fake" }

func TestPortsOfDirect(t *testing.T) {
	m := fakeModule{ports: pingImpl{}}
	p, ok := PortsOf[pinger](m)
	if !ok || p.Ping() != "pong" {
		t.Fatalf("direct ports lookup failed")
	}
}

func TestPortsOfStructField(t *testing.T) {
	type bundle struct {
		P pinger
	}
	m := fakeModule{ports: bundle{P: pingImpl{}}}
	p, ok := PortsOf[pinger](m)
	if !ok || p.Ping() != "pong" {
		t.Fatalf("struct field ports lookup failed")
	}
}

func TestPortsOfMissing(t *testing.T) {
	m := fakeModule{}
	if _, ok := PortsOf[pinger](m); ok {
		t.Fatalf("expected no ports on empty module")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustPortsOf should panic when missing")
		}
	}()
	_ = MustPortsOf[pinger](m)
}

func TestRegistry(t *testing.T) {
	Reset()
	Register("search", pingImpl{})
	p, ok := PortsAs[pinger]("search")
	if !ok || p.Ping() != "pong" {
		t.Fatalf("registry lookup failed")
	}
	if _, ok := PortsAs[pinger]("missing"); ok {
		t.Fatalf("missing name should not resolve")
	}
	Reset()
	if _, ok := PortsAs[pinger]("search"); ok {
		t.Fatalf("Reset should clear the registry")
	}
}
