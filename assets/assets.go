package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

const scoreFontSize = 50

var ScoreFont *text.GoTextFace

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		panic(err)
	}
	ScoreFont = &text.GoTextFace{
		Source: fontSource,
		Size:   scoreFontSize,
	}
}
