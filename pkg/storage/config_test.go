package storage_test

import (
	"testing"

	"github.com/JaimeStill/pdf-tools/pkg/storage"
)

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name     string
		cfg      storage.Config
		env      map[string]string
		wantPath string
		wantSize int64
		wantErr  bool
	}{
		{
			name:     "defaults",
			wantPath: ".data/staging",
			wantSize: 100_000_000,
		},
		{
			name:     "explicit values",
			cfg:      storage.Config{BasePath: "/tmp/stage", MaxUploadSize: "10MB"},
			wantPath: "/tmp/stage",
			wantSize: 10_000_000,
		},
		{
			name:     "environment override",
			cfg:      storage.Config{MaxUploadSize: "10MB"},
			env:      map[string]string{"TEST_STORAGE_MAX_UPLOAD_SIZE": "1KB"},
			wantPath: ".data/staging",
			wantSize: 1000,
		},
		{
			name:    "invalid size",
			cfg:     storage.Config{MaxUploadSize: "lots"},
			wantErr: true,
		},
	}

	env := &storage.Env{
		BasePath:      "TEST_STORAGE_BASE_PATH",
		MaxUploadSize: "TEST_STORAGE_MAX_UPLOAD_SIZE",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := tt.cfg
			err := cfg.Finalize(env)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Finalize() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if cfg.BasePath != tt.wantPath {
				t.Errorf("BasePath = %q, want %q", cfg.BasePath, tt.wantPath)
			}
			if cfg.MaxUploadSizeBytes() != tt.wantSize {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), tt.wantSize)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := storage.Config{BasePath: ".data/staging", MaxUploadSize: "100MB"}
	base.Merge(&storage.Config{MaxUploadSize: "5MB"})

	if base.BasePath != ".data/staging" {
		t.Errorf("BasePath = %q, want unchanged", base.BasePath)
	}
	if base.MaxUploadSize != "5MB" {
		t.Errorf("MaxUploadSize = %q, want %q", base.MaxUploadSize, "5MB")
	}
}
