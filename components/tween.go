package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a single animated value on an entity.
type TweenData struct {
	*gween.Tween
}

var Tween = donburi.NewComponentType[TweenData]()
