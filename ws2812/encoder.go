// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"fmt"
	"io"
)

// SPI bytes emulating the two pulse widths of the one-wire protocol when
// sent MSB first.
const (
	// SymbolOne is a long high pulse.
	SymbolOne byte = 0x7E
	// SymbolZero is a short high pulse.
	SymbolZero byte = 0x70
)

// symbolsPerLed is 3 channels of 8 bits, one SPI byte per bit.
const symbolsPerLed = 3 * 8

// symbols holds the 8 SPI bytes of each stored channel value.
var symbols [32][8]byte

func init() {
	for v := range symbols {
		duty := pwmTable[v]
		for bit := range 8 {
			if duty&(0x80>>bit) != 0 {
				symbols[v][bit] = SymbolOne
			} else {
				symbols[v][bit] = SymbolZero
			}
		}
	}
}

// FrameLen returns the number of SPI bytes of a frame for numLeds LEDs.
func FrameLen(numLeds int) int {
	return numLeds * symbolsPerLed
}

// Encode appends the frame for s to dst and returns the extended slice.
func Encode(dst []byte, s *Store) []byte {
	for _, p := range s.pixels {
		// Order on the wire is G-R-B.
		dst = append(dst, symbols[p.G5()][:]...)
		dst = append(dst, symbols[p.R5()][:]...)
		dst = append(dst, symbols[p.B5()][:]...)
	}
	return dst
}

// flusher is implemented by buffered links such as bufio.Writer.
type flusher interface {
	Flush() error
}

// Encoder streams frames to a serial link without being preempted.
type Encoder struct {
	cs CriticalSection
}

// NewEncoder returns an Encoder guarding each frame with cs. A nil cs means
// no protection.
func NewEncoder(cs CriticalSection) *Encoder {
	if cs == nil {
		cs = Nop{}
	}
	return &Encoder{cs: cs}
}

// Flush writes the frame for s to w one symbol at a time.
//
// w must be clocked at a fixed bit rate, MSB first. If w has a Flush() error
// method, it is called before leaving the critical section.
//
// The LEDs do not acknowledge anything. An error only means the link failed
// and the frame was cut short; the LEDs recover on the next complete frame.
func (e *Encoder) Flush(s *Store, w io.ByteWriter) error {
	e.cs.Enter()
	defer e.cs.Exit()
	for i, p := range s.pixels {
		for _, v := range [3]uint8{p.G5(), p.R5(), p.B5()} {
			for _, b := range symbols[v] {
				if err := w.WriteByte(b); err != nil {
					return fmt.Errorf("ws2812: frame aborted at LED %d: %w", i, err)
				}
			}
		}
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("ws2812: frame aborted: %w", err)
		}
	}
	return nil
}
