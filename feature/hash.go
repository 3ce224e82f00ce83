package feature

import "github.com/minio/highwayhash"

// hashKey is fixed so identical content always hashes identically across
// runs; content hashing here is for change-detection, not authentication.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// ContentHash returns a 64-bit content hash of data. The analyzer stamps
// it on each ScannedDocument and exposes it through Document.ContentHash;
// it is not used as a feature identity, and cache invalidation does not
// compare hashes.
func ContentHash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
