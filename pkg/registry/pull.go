/*
Copyright © 2026 Fineswap
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"

	"github.com/fineswap/vertag/pkg/catalog"
	"github.com/fineswap/vertag/pkg/defaults"
	apperrors "github.com/fineswap/vertag/pkg/errors"
	"github.com/fineswap/vertag/pkg/imageref"
	"github.com/fineswap/vertag/pkg/serializer"
	"github.com/fineswap/vertag/pkg/version"
)

// PullOptions configures a catalog pull.
type PullOptions struct {
	// Reference is the artifact reference, e.g. "ghcr.io/acme/catalog:v1.0.0".
	Reference string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PullResult contains a pulled catalog and its artifact metadata.
type PullResult struct {
	// Catalog is the decoded, validated catalog.
	Catalog *catalog.Catalog
	// ArtifactVersion is the version advertised by the manifest
	// annotations. Invalid when the artifact carries none.
	ArtifactVersion version.Version
	// Digest is the SHA256 digest of the pulled manifest.
	Digest string
}

// Pull fetches a catalog artifact from a registry and decodes it.
func Pull(ctx context.Context, opts PullOptions) (*PullResult, error) {
	named, tag, err := parseArtifactReference(opts.Reference)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.RegistryPullTimeout)
	defer cancel()

	repo, err := remote.NewRepository(named.Name())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	store := memory.New()

	desc, err := oras.Copy(ctx, repo, tag, store, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUpstream,
			"failed to pull catalog artifact", err, map[string]any{
				"reference": named.Name() + ":" + tag,
			})
	}

	result, err := unpack(ctx, store, desc)
	if err != nil {
		return nil, err
	}
	result.Digest = desc.Digest.String()

	return result, nil
}

// unpack decodes a catalog artifact from a store holding its manifest and
// layers.
func unpack(ctx context.Context, fetcher content.Fetcher, desc ociv1.Descriptor) (*PullResult, error) {
	manifestBytes, err := content.FetchAll(ctx, fetcher, desc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to fetch manifest", err)
	}

	var manifest ociv1.Manifest
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"failed to decode manifest", err)
	}

	layer, format, err := catalogLayer(manifest)
	if err != nil {
		return nil, err
	}

	data, err := content.FetchAll(ctx, fetcher, layer)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to fetch catalog layer", err)
	}

	reader, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var cat catalog.Catalog
	if err := reader.Deserialize(&cat); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"failed to decode catalog payload", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"pulled catalog failed validation", err)
	}

	artifactVersion, err := imageref.FromAnnotations(manifest.Annotations, annotationTitle)
	if err != nil {
		slog.Debug("artifact carries no comparable version", "error", err.Error())
	}

	return &PullResult{
		Catalog:         &cat,
		ArtifactVersion: artifactVersion,
	}, nil
}

// catalogLayer finds the catalog payload layer in a manifest.
func catalogLayer(manifest ociv1.Manifest) (ociv1.Descriptor, serializer.Format, error) {
	for _, layer := range manifest.Layers {
		switch layer.MediaType {
		case LayerMediaTypeYAML:
			return layer, serializer.FormatYAML, nil
		case LayerMediaTypeJSON:
			return layer, serializer.FormatJSON, nil
		}
	}

	return ociv1.Descriptor{}, "", apperrors.New(apperrors.ErrCodeInvalidRequest,
		"artifact contains no catalog layer")
}
