/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/

// Package registry pushes and pulls version catalogs as OCI artifacts.
package registry

import (
	"bytes"
	"context"
	"crypto/tls"
	"net/http"
	"strings"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/defaults"
	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/serializer"
)

const (
	// ArtifactType is the media type for vertag catalog artifacts.
	ArtifactType = "application/vnd.fineswap.vertag.catalog"

	// LayerMediaTypeYAML is the media type of YAML catalog layers.
	LayerMediaTypeYAML = "application/vnd.fineswap.vertag.catalog.v1+yaml"

	// LayerMediaTypeJSON is the media type of JSON catalog layers.
	LayerMediaTypeJSON = "application/vnd.fineswap.vertag.catalog.v1+json"

	// annotationTitle names pushed catalog artifacts. Pulled artifacts
	// resolve their version label from it.
	annotationTitle = "catalog"
)

// PushOptions configures a catalog push.
type PushOptions struct {
	// Reference is the artifact reference, e.g. "ghcr.io/acme/catalog:v1.0.0".
	Reference string
	// Format selects the payload encoding. Defaults to YAML.
	Format serializer.Format
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult contains the result of a successful catalog push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the normalized artifact reference.
	Reference string
}

// Push packages the catalog as an OCI artifact and pushes it to a registry.
// The manifest carries the catalog's own version in the standard version
// annotation so consumers can inspect it without fetching the payload.
func Push(ctx context.Context, cat *catalog.Catalog, opts PushOptions) (*PushResult, error) {
	if cat == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "catalog is required")
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	named, tag, err := parseArtifactReference(opts.Reference)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = serializer.FormatYAML
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
	defer cancel()

	store, err := pack(ctx, cat, format, tag)
	if err != nil {
		return nil, err
	}

	repo, err := remote.NewRepository(named.Name())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	desc, err := oras.Copy(ctx, store, tag, repo, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream,
			"failed to push catalog artifact", err, map[string]any{
				"reference": named.Name() + ":" + tag,
			})
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: named.Name() + ":" + tag,
	}, nil
}

// pack marshals the catalog and assembles a tagged OCI manifest in an
// in-memory store.
func pack(ctx context.Context, cat *catalog.Catalog, format serializer.Format, tag string) (*memory.Store, error) {
	data, err := serializer.Marshal(format, cat)
	if err != nil {
		return nil, err
	}

	store := memory.New()

	layerDesc := content.NewDescriptorFromBytes(layerMediaType(format), data)
	if err := store.Push(ctx, layerDesc, bytes.NewReader(data)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to stage catalog layer", err)
	}

	// The artifact advertises the catalog's own version, falling back to
	// the push tag when the catalog header carries none.
	artifactVersion := cat.Metadata["version"]
	if artifactVersion == "" {
		artifactVersion = tag
	}

	packOpts := oras.PackManifestOptions{
		Layers: []ociv1.Descriptor{layerDesc},
		ManifestAnnotations: map[string]string{
			ociv1.AnnotationTitle:   annotationTitle,
			ociv1.AnnotationVersion: artifactVersion,
		},
	}

	manifestDesc, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to pack manifest", err)
	}

	if err := store.Tag(ctx, manifestDesc, tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to tag manifest", err)
	}

	return store, nil
}

// parseArtifactReference normalizes and validates an artifact reference,
// returning the named repository and the mandatory tag.
func parseArtifactReference(ref string) (reference.Named, string, error) {
	if ref == "" {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidRequest,
			"artifact reference is required")
	}

	named, err := reference.ParseNormalizedNamed(stripProtocol(ref))
	if err != nil {
		return nil, "", apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid artifact reference", err, map[string]any{"reference": ref})
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return nil, "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"artifact reference must carry a tag", map[string]any{"reference": ref})
	}

	return named, tagged.Tag(), nil
}

// layerMediaType maps a serialization format to its layer media type.
func layerMediaType(format serializer.Format) string {
	if format == serializer.FormatJSON {
		return LayerMediaTypeJSON
	}
	return LayerMediaTypeYAML
}

// stripProtocol removes an http:// or https:// prefix from a reference.
func stripProtocol(ref string) string {
	ref = strings.TrimPrefix(ref, "https://")
	ref = strings.TrimPrefix(ref, "http://")
	return ref
}

// newAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func newAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
