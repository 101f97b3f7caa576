package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TweenData drives a single animated value.
type TweenData struct {
	*gween.Tween
	From, To float32
	Duration float32
	Ease     ease.TweenFunc
	PingPong bool // restart in the opposite direction when finished

	Value float64
	Done  bool
}

var Tween = donburi.NewComponentType[TweenData]()

// NewTween returns tween data running from from to to over duration seconds.
func NewTween(from, to, duration float32, fn ease.TweenFunc, pingPong bool) TweenData {
	return TweenData{
		Tween:    gween.New(from, to, duration, fn),
		From:     from,
		To:       to,
		Duration: duration,
		Ease:     fn,
		PingPong: pingPong,
		Value:    float64(from),
	}
}
