package scroll_test

import (
	"fmt"

	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
	"github.com/fkcurrie/ledscroll-golang/pkg/scroll"
)

func Example() {
	cfg := scroll.Config{
		Rows:          5,
		Cols:          5,
		MaxLevel:      9,
		Level:         9,
		TrailingBlank: 5,
		LetterSpacing: 1,
	}

	s := scroll.New(cfg)
	s.SetMessage([]byte("HI"))
	f := frame.New(cfg.Rows, cfg.Cols, cfg.MaxLevel)

	// The first window shows H
	s.RenderInto(f)
	fmt.Print(f)
	fmt.Println()

	// One pitch later the window shows I
	for i := 0; i < s.Pitch(); i++ {
		s.Tick()
	}
	s.RenderInto(f)
	fmt.Print(f)

	fmt.Println(s.Length(), s.State())
	// Output:
	// 9..9.
	// 9..9.
	// 9999.
	// 9..9.
	// 9..9.
	//
	// 999..
	// .9...
	// .9...
	// .9...
	// 999..
	// 17 scrolling
}
