package store

import (
	"fmt"

	"alarmclock/clockos/alarm"
	"alarmclock/hal"
)

const (
	recordMarker = 0xA5
	headerLen    = 6
	maxLabelLen  = alarm.MaxLabelLen * 4
	maxRecordLen = headerLen + maxLabelLen + 1
)

// FlashStore keeps the alarm as one checksummed record at the start of an
// erase block.
//
//	[0]     marker 0xA5
//	[1..4]  hour, minute, am, enabled
//	[5]     label length n
//	[6..]   label, n bytes of UTF-8
//	[6+n]   additive checksum of every earlier byte
type FlashStore struct {
	flash hal.Flash
	off   uint32
}

// NewFlashStore places the record at off, which must be erase-block aligned.
func NewFlashStore(f hal.Flash, off uint32) *FlashStore {
	return &FlashStore{flash: f, off: off}
}

func (s *FlashStore) Load() (alarm.Config, bool, error) {
	var buf [maxRecordLen]byte
	n, err := s.flash.ReadAt(buf[:], s.off)
	if err != nil && n < headerLen+1 {
		return alarm.Config{}, false, fmt.Errorf("read alarm record: %w", err)
	}
	return decodeRecord(buf[:n])
}

func (s *FlashStore) Save(cfg alarm.Config) error {
	rec, err := encodeRecord(cfg)
	if err != nil {
		return err
	}
	block := s.flash.EraseBlockBytes()
	if block == 0 {
		return fmt.Errorf("save alarm record: %w", hal.ErrNotImplemented)
	}
	size := (uint32(len(rec)) + block - 1) / block * block
	if err := s.flash.Erase(s.off, size); err != nil {
		return fmt.Errorf("erase alarm record: %w", err)
	}
	if _, err := s.flash.WriteAt(rec, s.off); err != nil {
		return fmt.Errorf("write alarm record: %w", err)
	}
	return nil
}

func encodeRecord(cfg alarm.Config) ([]byte, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("encode alarm %s: %w", cfg, alarm.ErrInvalidConfig)
	}
	label := []byte(cfg.Label)
	rec := make([]byte, 0, headerLen+len(label)+1)
	rec = append(rec, recordMarker, cfg.Hour, cfg.Minute, boolByte(cfg.IsAM), boolByte(cfg.Enabled), byte(len(label)))
	rec = append(rec, label...)
	rec = append(rec, checksum(rec))
	return rec, nil
}

func decodeRecord(b []byte) (alarm.Config, bool, error) {
	if len(b) > 0 && b[0] == 0xFF && erased(b) {
		return alarm.Config{}, false, nil
	}
	if len(b) < headerLen+1 || b[0] != recordMarker {
		return alarm.Config{}, false, fmt.Errorf("bad marker: %w", ErrCorrupt)
	}
	n := int(b[5])
	if n > maxLabelLen || len(b) < headerLen+n+1 {
		return alarm.Config{}, false, fmt.Errorf("label length %d: %w", n, ErrCorrupt)
	}
	if got, want := b[headerLen+n], checksum(b[:headerLen+n]); got != want {
		return alarm.Config{}, false, fmt.Errorf("checksum %#02x, want %#02x: %w", got, want, ErrCorrupt)
	}
	if b[3] > 1 || b[4] > 1 {
		return alarm.Config{}, false, fmt.Errorf("flag bytes: %w", ErrCorrupt)
	}
	cfg := alarm.Config{
		Hour:    b[1],
		Minute:  b[2],
		IsAM:    b[3] == 1,
		Enabled: b[4] == 1,
		Label:   string(b[headerLen : headerLen+n]),
	}
	if !cfg.Valid() {
		return alarm.Config{}, false, fmt.Errorf("alarm %s: %w", cfg, ErrCorrupt)
	}
	return cfg, true, nil
}

func erased(b []byte) bool {
	for _, v := range b {
		if v != 0xFF {
			return false
		}
	}
	return true
}

func checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
