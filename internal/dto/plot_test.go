package dto

import (
	"encoding/json"
	"testing"

	"svg-plotter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromShape_OnlyKindFields(t *testing.T) {
	b, err := json.Marshal(FromShape(domain.NewCircle(1, 2, 0, "#000000")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"circle","fill":"#000000","cx":1,"cy":2,"r":0}`, string(b))

	b, err = json.Marshal(FromShape(domain.NewRect(0, 0, 5, 6, "#FFFFFF")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"rect","fill":"#FFFFFF","x":0,"y":0,"width":5,"height":6}`, string(b))

	b, err = json.Marshal(FromShape(domain.NewPolygon([]domain.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, "#AABBCC")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"polygon","fill":"#AABBCC","points":[{"x":1,"y":2},{"x":3,"y":4},{"x":5,"y":6}]}`, string(b))
}

func TestFromShapes_NeverNil(t *testing.T) {
	b, err := json.Marshal(PlotResponse{Shapes: FromShapes(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shapes":[],"svg":""}`, string(b))
}
