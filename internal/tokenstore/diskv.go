package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores the sealed token as a file under <dataDir>/slots.
type Diskv struct {
	d    *diskv.Diskv
	seal *sealer
}

// NewDiskv creates a file-backed token store.
func NewDiskv(dataDir string) (*Diskv, error) {
	base := filepath.Join(dataDir, "slots")
	if err := os.MkdirAll(base, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating slot directory: %v", ErrStorage, err)
	}
	s, err := newSealer(dataDir)
	if err != nil {
		return nil, err
	}
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:     base,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 0,
			FilePerm:     0600,
			PathPerm:     0700,
		}),
		seal: s,
	}, nil
}

func (s *Diskv) Set(token string) error {
	blob, err := s.seal.seal(Slot, []byte(token))
	if err != nil {
		return err
	}
	if err := s.d.Write(Slot, blob); err != nil {
		return fmt.Errorf("%w: writing slot: %v", ErrStorage, err)
	}
	return nil
}

func (s *Diskv) Get() (string, error) {
	if !s.d.Has(Slot) {
		return "", ErrNotFound
	}
	blob, err := s.d.Read(Slot)
	if err != nil {
		return "", fmt.Errorf("%w: reading slot: %v", ErrStorage, err)
	}
	plain, err := s.seal.open(Slot, blob)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (s *Diskv) Remove() error {
	if !s.d.Has(Slot) {
		return nil
	}
	if err := s.d.Erase(Slot); err != nil {
		return fmt.Errorf("%w: erasing slot: %v", ErrStorage, err)
	}
	return nil
}

func (s *Diskv) Close() error { return nil }
