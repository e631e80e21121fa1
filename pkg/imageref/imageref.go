// Copyright (c) 2026, Fineswap.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package imageref derives labeled versions from container image references
// and OCI annotation maps.
//
// The label comes from the final element of the repository path and the
// version text from the tag, so "ghcr.io/nvidia/cuda:v12.4.1" yields the
// version "cuda-12.4.1". A leading "v" on the tag is trimmed before parsing.
package imageref

import (
	"errors"
	"fmt"
	"strings"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/fineswap/vertag/pkg/version"
)

var (
	// ErrInvalidReference indicates the image reference could not be parsed.
	ErrInvalidReference = errors.New("invalid image reference")

	// ErrUntagged indicates the image reference carries no tag to derive a
	// version from. Digest-only references are rejected with this error.
	ErrUntagged = errors.New("image reference has no tag")

	// ErrNoVersionAnnotation indicates the annotation map carries no
	// org.opencontainers.image.version entry.
	ErrNoVersionAnnotation = errors.New("no version annotation")
)

// FromRef derives a labeled version from a container image reference.
// The reference is normalized the same way Docker does, so bare names like
// "nginx:1.25.3" resolve against docker.io/library.
func FromRef(imageRef string) (version.Version, error) {
	named, err := reference.ParseNormalizedNamed(imageRef)
	if err != nil {
		return version.Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidReference, imageRef, err)
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return version.Version{}, fmt.Errorf("%w: %q", ErrUntagged, imageRef)
	}

	label := lastPathElement(reference.Path(named))
	text := strings.TrimPrefix(tagged.Tag(), "v")
	return version.Parse(label, text)
}

// FromAnnotations resolves a labeled version from an OCI annotation map,
// such as the manifest annotations of a pulled artifact. The version text
// comes from org.opencontainers.image.version and the label from
// org.opencontainers.image.title, falling back to defaultLabel when the
// title annotation is absent.
func FromAnnotations(annotations map[string]string, defaultLabel string) (version.Version, error) {
	text := annotations[ociv1.AnnotationVersion]
	if text == "" {
		return version.Version{}, fmt.Errorf("%w: %s", ErrNoVersionAnnotation, ociv1.AnnotationVersion)
	}

	label := annotations[ociv1.AnnotationTitle]
	if label == "" {
		label = defaultLabel
	}

	return version.Parse(label, strings.TrimPrefix(text, "v"))
}

func lastPathElement(repoPath string) string {
	if idx := strings.LastIndex(repoPath, "/"); idx >= 0 {
		return repoPath[idx+1:]
	}
	return repoPath
}
