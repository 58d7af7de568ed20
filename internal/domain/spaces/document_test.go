package spaces

import (
	"testing"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

func newTestDocumentParams() NewDocumentParams {
	return NewDocumentParams{
		SpaceID:     uuid.New(),
		TenantID:    uuid.New(),
		Filename:    "policy.pdf",
		SizeBytes:   1024000,
		ContentHash: ComputeContentHash([]byte("test content")),
		BlobURL:     "https://storage.example.com/doc1",
		UploadedBy:  uuid.New(),
	}
}

func TestComputeContentHash(t *testing.T) {
	got := ComputeContentHash([]byte("test content"))
	want := "6ae8a75555209fd6c44157c0aed8016e763ff435a19cf186f76863140143ff72"
	if got != want {
		t.Fatalf("hash: want=%s got=%s", want, got)
	}
	if ComputeContentHash([]byte("other")) == got {
		t.Fatalf("distinct content should hash differently")
	}
}

func TestNewDocumentDefaults(t *testing.T) {
	d, err := NewDocument(newTestDocumentParams())
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if d.Status != DocumentStatusPending {
		t.Fatalf("status default: want=pending got=%s", d.Status)
	}
	if d.DocumentType != DocumentTypeOther {
		t.Fatalf("type default: want=other got=%s", d.DocumentType)
	}
	if d.ContentType != "application/pdf" {
		t.Fatalf("content_type default: want=application/pdf got=%s", d.ContentType)
	}
	if d.Metadata.Language != "en" {
		t.Fatalf("language default: want=en got=%s", d.Metadata.Language)
	}
}

func TestNewDocumentFilenameExtension(t *testing.T) {
	for _, name := range []string{"report.pdf", "notes.TXT", "memo.docx", "README.md"} {
		p := newTestDocumentParams()
		p.Filename = name
		if _, err := NewDocument(p); err != nil {
			t.Fatalf("NewDocument(%q): %v", name, err)
		}
	}
	for _, name := range []string{"", "archive.zip", "image.png", "script.sh", "noextension"} {
		p := newTestDocumentParams()
		p.Filename = name
		_, err := NewDocument(p)
		if err == nil {
			t.Fatalf("NewDocument(%q): expected error", name)
		}
		if !aggregates.IsCode(err, aggregates.CodeValidation) {
			t.Fatalf("NewDocument(%q): expected validation code, got %q", name, aggregates.CodeOf(err))
		}
	}
}

func TestNewDocumentFieldValidation(t *testing.T) {
	p := newTestDocumentParams()
	p.SizeBytes = 0
	if _, err := NewDocument(p); err == nil {
		t.Fatalf("zero size should be rejected")
	}

	p = newTestDocumentParams()
	p.ContentHash = " "
	if _, err := NewDocument(p); err == nil {
		t.Fatalf("blank hash should be rejected")
	}

	p = newTestDocumentParams()
	p.DocumentType = DocumentType("spreadsheet")
	if _, err := NewDocument(p); err == nil {
		t.Fatalf("unknown document type should be rejected")
	}
}

func TestIsDuplicate(t *testing.T) {
	d, err := NewDocument(newTestDocumentParams())
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if !d.IsDuplicate(d.ContentHash) {
		t.Fatalf("same hash should be duplicate")
	}
	if d.IsDuplicate(ComputeContentHash([]byte("different"))) {
		t.Fatalf("different hash should not be duplicate")
	}
}

func TestMarkAsIndexed(t *testing.T) {
	d, err := NewDocument(newTestDocumentParams())
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	d.MarkAsProcessing()
	if d.Status != DocumentStatusProcessing {
		t.Fatalf("status: want=processing got=%s", d.Status)
	}
	d.MarkAsIndexed(42)
	if d.Status != DocumentStatusIndexed {
		t.Fatalf("status: want=indexed got=%s", d.Status)
	}
	if d.ChunkCount != 42 {
		t.Fatalf("chunk_count: want=42 got=%d", d.ChunkCount)
	}
	if d.IndexedAt == nil {
		t.Fatalf("indexed_at not set")
	}
}

func TestStatusTransitionsArePermissive(t *testing.T) {
	// Pinning the permissive behavior: no transition guard at this
	// layer, including indexing an already-deleted document.
	d, err := NewDocument(newTestDocumentParams())
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	d.MarkAsDeleted()
	if d.Status != DocumentStatusDeleted {
		t.Fatalf("status: want=deleted got=%s", d.Status)
	}
	d.MarkAsIndexed(7)
	if d.Status != DocumentStatusIndexed {
		t.Fatalf("status after delete+index: want=indexed got=%s", d.Status)
	}
	d.MarkAsFailed()
	if d.Status != DocumentStatusFailed {
		t.Fatalf("status: want=failed got=%s", d.Status)
	}
}
