package errors

import (
	stderrors "errors"
	"testing"
)

func TestSiteErrorFormatting(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "missing site title")
	want := "config (fatal): missing site title"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSiteErrorWrapping(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WrapError(cause, CategoryFileSystem, "failed to write page")

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to match cause via errors.Is")
	}
	if err.Error() != "filesystem (error): failed to write page: permission denied" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestSiteErrorContext(t *testing.T) {
	err := ValidationError("unknown page").WithContext("page", "blog.html")
	if err.Context["page"] != "blog.html" {
		t.Errorf("expected context page=blog.html, got %v", err.Context)
	}
	if err.Severity != SeverityWarning {
		t.Errorf("expected warning severity, got %s", err.Severity)
	}
}

func TestCategoryHelpers(t *testing.T) {
	err := New(CategoryRender, SeverityError, "template failed")
	if !IsCategory(err, CategoryRender) {
		t.Error("expected IsCategory to match render")
	}
	if IsCategory(err, CategoryConfig) {
		t.Error("did not expect config category")
	}
	if GetCategory(stderrors.New("plain")) != CategoryInternal {
		t.Error("plain errors should map to internal category")
	}
}
