package config

import (
	"errors"
	"fmt"

	"deskclock/hal"
)

var ErrNoStorage = errors.New("config: no storage")

// Store keeps one Config record at the start of the first erase block.
type Store struct {
	flash hal.Flash
}

func NewStore(flash hal.Flash) *Store {
	return &Store{flash: flash}
}

// Load reads the record. On error or a corrupt record it still returns a usable
// Config, filled with defaults where needed.
func (s *Store) Load() (Config, error) {
	if s.flash == nil || s.flash.SizeBytes() < RecordSize {
		return Default(), ErrNoStorage
	}
	var buf [RecordSize]byte
	if _, err := s.flash.ReadAt(buf[:], 0); err != nil {
		return Default(), fmt.Errorf("config: read: %w", err)
	}
	c, ok := Decode(buf[:])
	if !ok {
		return c, fmt.Errorf("config: record % x out of range", buf[:])
	}
	return c, nil
}

// Save replaces the stored record.
func (s *Store) Save(c Config) error {
	if s.flash == nil || s.flash.SizeBytes() < RecordSize {
		return ErrNoStorage
	}
	bs := s.flash.EraseBlockBytes()
	if bs == 0 {
		return fmt.Errorf("config: erase: %w", hal.ErrNotImplemented)
	}
	if err := s.flash.Erase(0, bs); err != nil {
		return fmt.Errorf("config: erase: %w", err)
	}
	rec := c.Encode()
	if _, err := s.flash.WriteAt(rec[:], 0); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
