// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes the pool of HMAC-SHA256 hashers keyed with
// hashKey. The client and the server must share the key for upload
// integrity checks to pass.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest of data with a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashJSON marshals v and returns the hex-encoded HMAC of the result. It
// returns an empty string when v cannot be marshaled.
func HashJSON(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(Hash(payload))
}
