package textkey

import (
	"crypto/md5" // #nosec G501 - fingerprint must match existing stored cache keys, not a security boundary
	"encoding/hex"
)

// NormalizeAndHash computes the cache key for text: the MD5 digest of the
// normalized form (see NormalizeText), rendered as 32 lowercase hex
// characters. Texts that are equal after normalization always produce the
// same key. Empty and whitespace-only input hash to the digest of the empty
// byte sequence, "d41d8cd98f00b204e9800998ecf8427e".
func NormalizeAndHash(text string) string {
	sum := md5.Sum([]byte(NormalizeText(text))) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// NormalizeAndHashBatch applies NormalizeAndHash to every element of texts,
// returning keys in the same order. Each element is processed independently;
// there is no deduplication and no cross-item state.
func NormalizeAndHashBatch(texts []string) []string {
	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = NormalizeAndHash(text)
	}
	return keys
}
