package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	"github.com/louisbranch/welcomepath/internal/services/web/templates"
)

func testShell() module.Shell {
	return module.Shell{
		AppName: "WelcomePath",
		Lang:    "en",
		Header:  templates.HeaderView{UserName: "Alex Chen", UserInitials: "AC"},
	}
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, testShell(), ModulePage{
		Title:      "Dashboard",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) || !strings.Contains(body, `id="main"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") || strings.Contains(body, "app-header") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, testShell(), ModulePage{
		Title:    "Dashboard",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`<!doctype html>`, `lang="en"`, `<title>Dashboard | WelcomePath</title>`, `id="main"`, `id="fragment-root"`, "Alex Chen"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageHeaderOverridesShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, testShell(), ModulePage{
		Title:    "Dashboard",
		Header:   &templates.HeaderView{UserName: "Jordan Park", UserInitials: "JP"},
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<span class="user-name">Jordan Park</span>`) || !strings.Contains(body, `<span class="user-initials">JP</span>`) {
		t.Fatalf("body missing page header: %q", body)
	}
	if strings.Contains(body, "Alex Chen") {
		t.Fatalf("shell header should be replaced: %q", body)
	}
}

func TestWriteModulePageHeadOmitsBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, testShell(), ModulePage{Fragment: textComponent("ok")}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body for HEAD, got %q", rr.Body.String())
	}
}

func TestWriteModulePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, req, testShell(), ModulePage{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteModulePage() error = %v, want %v", err, boom)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected nothing written on render failure, got %q", rr.Body.String())
	}
}

func TestWriteModulePageNilWriterIsNoop(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, nil, module.Shell{}, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage(nil) error = %v", err)
	}
}

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}
