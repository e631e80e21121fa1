/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"

	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/serializer"
)

// stageArtifact pushes a manifest with a single payload layer into the
// store and returns the manifest descriptor.
func stageArtifact(t *testing.T, store *memory.Store, mediaType string, payload []byte) ociv1.Descriptor {
	t.Helper()
	ctx := context.Background()

	layerDesc := content.NewDescriptorFromBytes(mediaType, payload)
	if err := store.Push(ctx, layerDesc, bytes.NewReader(payload)); err != nil {
		t.Fatalf("Failed to stage layer: %v", err)
	}

	manifest := ociv1.Manifest{
		MediaType: ociv1.MediaTypeImageManifest,
		Config:    ociv1.DescriptorEmptyJSON,
		Layers:    []ociv1.Descriptor{layerDesc},
	}
	manifestBytes, err := json.Marshal(manifest)
	if err != nil {
		t.Fatalf("Failed to marshal manifest: %v", err)
	}

	desc := content.NewDescriptorFromBytes(ociv1.MediaTypeImageManifest, manifestBytes)
	if err := store.Push(ctx, desc, bytes.NewReader(manifestBytes)); err != nil {
		t.Fatalf("Failed to stage manifest: %v", err)
	}
	return desc
}

func TestPull_InvalidReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{name: "empty reference", ref: ""},
		{name: "missing tag", ref: "ghcr.io/acme/catalog"},
		{name: "spaces", ref: "invalid registry with spaces:v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pull(context.Background(), PullOptions{Reference: tt.ref})
			if err == nil {
				t.Fatalf("Pull(%q) expected error, got nil", tt.ref)
			}
			if apperrors.CodeOf(err) != apperrors.ErrCodeInvalidRequest {
				t.Errorf("Pull(%q) error code = %s, want %s",
					tt.ref, apperrors.CodeOf(err), apperrors.ErrCodeInvalidRequest)
			}
		})
	}
}

func TestCatalogLayer(t *testing.T) {
	tests := []struct {
		name       string
		layers     []ociv1.Descriptor
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "yaml layer",
			layers:     []ociv1.Descriptor{{MediaType: LayerMediaTypeYAML}},
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "json layer",
			layers:     []ociv1.Descriptor{{MediaType: LayerMediaTypeJSON}},
			wantFormat: serializer.FormatJSON,
		},
		{
			name: "catalog layer after foreign layer",
			layers: []ociv1.Descriptor{
				{MediaType: "application/octet-stream"},
				{MediaType: LayerMediaTypeJSON},
			},
			wantFormat: serializer.FormatJSON,
		},
		{
			name:    "no layers",
			layers:  nil,
			wantErr: true,
		},
		{
			name:    "only foreign layers",
			layers:  []ociv1.Descriptor{{MediaType: "application/octet-stream"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, format, err := catalogLayer(ociv1.Manifest{Layers: tt.layers})

			if (err != nil) != tt.wantErr {
				t.Fatalf("catalogLayer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && format != tt.wantFormat {
				t.Errorf("catalogLayer() format = %q, want %q", format, tt.wantFormat)
			}
		})
	}
}

func TestUnpack_MalformedPayload(t *testing.T) {
	store := memory.New()
	desc := stageArtifact(t, store, LayerMediaTypeJSON, []byte("{not json"))

	_, err := unpack(context.Background(), store, desc)
	if err == nil {
		t.Fatal("unpack() expected error for malformed payload, got nil")
	}
	if apperrors.CodeOf(err) != apperrors.ErrCodeInvalidRequest {
		t.Errorf("unpack() error code = %s, want %s",
			apperrors.CodeOf(err), apperrors.ErrCodeInvalidRequest)
	}
}

func TestUnpack_InvalidCatalog(t *testing.T) {
	// Structurally valid YAML that fails catalog validation.
	store := memory.New()
	desc := stageArtifact(t, store, LayerMediaTypeYAML, []byte("components: []\n"))

	_, err := unpack(context.Background(), store, desc)
	if err == nil {
		t.Fatal("unpack() expected error for invalid catalog, got nil")
	}
	if apperrors.CodeOf(err) != apperrors.ErrCodeInvalidRequest {
		t.Errorf("unpack() error code = %s, want %s",
			apperrors.CodeOf(err), apperrors.ErrCodeInvalidRequest)
	}
}
