package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"

	"svg-plotter/internal/domain"
)

func TestRenderShapes(t *testing.T) {
	is := is.New(t)

	shapes := []domain.Shape{
		domain.NewRect(10, 10, 50, 50, "#112233"),
		domain.NewCircle(100, 100, 20, "#445566"),
		domain.NewLine(0, 0, 100, 100, "#778899"),
		domain.NewPolygon([]domain.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, "#AABBCC"),
	}
	out, err := RenderString(DefaultCanvas(), shapes)
	is.NoErr(err)

	is.True(strings.Contains(out, `width="250"`))
	is.True(strings.Contains(out, `<rect x="10" y="10" width="50" height="50" fill="#112233"`))
	is.True(strings.Contains(out, `<circle cx="100" cy="100" r="20" fill="#445566"`))
	is.True(strings.Contains(out, `<line x1="0" y1="0" x2="100" y2="100" style="stroke:#778899"`))
	is.True(strings.Contains(out, `<polygon points="1,2 3,4 5,6" fill="#AABBCC"`))
	is.True(strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	// 元素顺序与输入顺序一致
	is.True(strings.Index(out, "<rect") < strings.Index(out, "<circle"))
	is.True(strings.Index(out, "<line") < strings.Index(out, "<polygon"))
}

func TestRenderEmpty(t *testing.T) {
	is := is.New(t)
	out, err := RenderString(Canvas{Width: 40, Height: 30}, nil)
	is.NoErr(err)
	is.True(strings.Contains(out, `width="40"`))
	is.True(strings.Contains(out, `height="30"`))
	is.False(strings.Contains(out, "<rect"))
}

func TestRenderInvalidCanvas(t *testing.T) {
	is := is.New(t)
	_, err := RenderString(Canvas{}, nil)
	is.Err(err)
}

func TestRenderMissingGeometry(t *testing.T) {
	is := is.New(t)
	_, err := RenderString(DefaultCanvas(), []domain.Shape{{Kind: domain.KindCircle}})
	is.Err(err)
	_, err = RenderString(DefaultCanvas(), []domain.Shape{{Kind: "star"}})
	is.Err(err)
	_, err = RenderString(DefaultCanvas(), []domain.Shape{domain.NewPolygon([]domain.Point{{X: 1, Y: 1}}, "#000000")})
	is.Err(err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	is := is.New(t)
	err := Render(failingWriter{}, DefaultCanvas(), nil)
	is.Err(err)
}
