// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/ledmatrix/ws2812"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	// A 16x16 panel wired as a serpentine.
	o := ws2812.DefaultOpts
	o.NumPixels = 256
	o.LedsPerRow = 16
	o.Alternating = true
	o.Atomic = ws2812.NewThreadLock()
	d, err := ws2812.NewSPI(p, &o)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	for y := range d.Rows() {
		for x := range d.LedsPerRow() {
			d.SetColorDimmedXY(x, y, byte(x*16), byte(y*16), 0x80, 128)
		}
	}
	if err := d.Show(); err != nil {
		log.Fatal(err)
	}
	time.Sleep(5 * time.Second)
}

func ExampleStore_Index() {
	s, err := ws2812.NewStore(6, &ws2812.Layout{LedsPerRow: 3, Alternating: true})
	if err != nil {
		log.Fatal(err)
	}
	for y := range s.Rows() {
		var row []int
		for x := range s.LedsPerRow() {
			row = append(row, s.Index(x, y))
		}
		fmt.Println(row)
	}
	// Output:
	// [0 1 2]
	// [5 4 3]
}

func ExampleStore_ColorXY() {
	s, err := ws2812.NewStore(4, nil)
	if err != nil {
		log.Fatal(err)
	}
	s.SetColorXY(1, 0, 0xFF, 0x81, 0x07)
	fmt.Println(s.ColorXY(1, 0))
	// Output:
	// 248 128 0
}

func ExampleBrightnessToPWM() {
	for _, b := range []byte{0, 64, 128, 192, 255} {
		fmt.Println(b, ws2812.BrightnessToPWM(b))
	}
	// Output:
	// 0 0
	// 64 4
	// 128 23
	// 192 95
	// 255 255
}
