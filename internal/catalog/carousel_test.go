package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_NextPrevWrap(t *testing.T) {
	car := Carousel{Length: 3}

	car.Next()
	assert.Equal(t, 1, car.Index)
	car.Next()
	car.Next()
	assert.Equal(t, 0, car.Index, "после последнего слайда возвращаемся к первому")

	car.Prev()
	assert.Equal(t, 2, car.Index, "с первого слайда назад — на последний")
}

func TestCarousel_SingleElement(t *testing.T) {
	car := Carousel{Length: 1}

	car.Next()
	assert.Equal(t, 0, car.Index)
	car.Prev()
	assert.Equal(t, 0, car.Index)
}

func TestCarousel_EmptyNavigationIsNoop(t *testing.T) {
	var car Carousel

	car.Next()
	car.Prev()
	assert.Equal(t, 0, car.Index)
	assert.True(t, car.Empty())
}

func TestCarousel_RemoveClampsLastIndex(t *testing.T) {
	// Удаление последнего слайда прижимает индекс к новому концу,
	// а не переносит его по кругу
	car := Carousel{Index: 2, Length: 3}

	car.Remove()
	assert.Equal(t, 1, car.Index)
	assert.Equal(t, 2, car.Length)
}

func TestCarousel_RemoveInMiddleKeepsIndex(t *testing.T) {
	car := Carousel{Index: 1, Length: 4}

	car.Remove()
	assert.Equal(t, 1, car.Index)
	assert.Equal(t, 3, car.Length)
}

func TestCarousel_RemoveSoleElement(t *testing.T) {
	car := Carousel{Index: 0, Length: 1}

	car.Remove()
	assert.Equal(t, 0, car.Index)
	assert.Equal(t, 0, car.Length)
	assert.True(t, car.Empty())
}

func TestCarousel_Reset(t *testing.T) {
	car := Carousel{Index: 2, Length: 3}

	car.Reset(5)
	assert.Equal(t, 0, car.Index)
	assert.Equal(t, 5, car.Length)
}
