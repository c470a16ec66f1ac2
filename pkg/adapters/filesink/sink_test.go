package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/skinview/pkg/mocks"
	"github.com/user/skinview/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveLayoutJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte(`{"ratio": 1}`)
	if err := sink.SaveLayoutJSON("steve", data); err != nil {
		t.Fatalf("SaveLayoutJSON failed: %v", err)
	}

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "steve", "layout.json"))
	if !ok {
		t.Fatal("expected layout.json to be saved")
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveImages(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New(testBaseDir, fs, renderer)
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	if err := sink.SaveRegionMap("alex", img); err != nil {
		t.Fatalf("SaveRegionMap failed: %v", err)
	}
	if err := sink.SaveCanvas("alex", img); err != nil {
		t.Fatalf("SaveCanvas failed: %v", err)
	}

	for _, file := range []string{"regions.png", "canvas.png"} {
		if _, ok := fs.GetFile(filepath.Join(testBaseDir, "alex", file)); !ok {
			t.Errorf("expected %s to be saved", file)
		}
	}
	for _, f := range renderer.Encoded {
		if f != ports.FormatPNG {
			t.Errorf("expected PNG encoding, got %s", f)
		}
	}
}

func TestSink_SanitisesNames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	if err := sink.SaveLayoutJSON("../../etc", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := sink.SaveLayoutJSON("", []byte("{}")); err != nil {
		t.Fatal(err)
	}

	for path := range fs.GetAllFiles() {
		rel, err := filepath.Rel(testBaseDir, path)
		if err != nil || rel == ".." || filepath.IsAbs(rel) || rel[:2] == ".." {
			t.Errorf("path %s escapes the base directory", path)
		}
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "default", "layout.json")); !ok {
		t.Error("expected empty name to map to default")
	}
}

func TestSink_EncodeError(t *testing.T) {
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(image.Image, ports.ImageFormat, int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	sink := New(testBaseDir, mocks.NewFileSystem(), renderer)

	if err := sink.SaveCanvas("x", image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error")
	}
}
