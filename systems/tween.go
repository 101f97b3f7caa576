package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// UpdateTweens advances every tween and applies its value to the owner: the
// bird's idle bob and the game-over flash.
func UpdateTweens(w donburi.World) {
	game := GetOrCreateGame(w)
	dt := float32(cfg.Step())

	var finished []*donburi.Entry
	components.Tween.Each(w, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		stepTween(tw, dt)

		switch {
		case e.HasComponent(tags.Bird):
			bird := components.Bird.Get(e)
			if game.State == components.StateReady {
				bird.Bob = tw.Value
			} else {
				bird.Bob = 0
			}
		case e.HasComponent(tags.Flash):
			components.Flash.Get(e).Alpha = tw.Value
			if tw.Done {
				finished = append(finished, e)
			}
		}
	})

	for _, e := range finished {
		w.Remove(e.Entity())
	}
}

func stepTween(tw *components.TweenData, dt float32) {
	if tw.Done {
		return
	}
	v, done := tw.Update(dt)
	tw.Value = float64(v)
	if !done {
		return
	}
	if !tw.PingPong {
		tw.Done = true
		return
	}
	tw.From, tw.To = tw.To, tw.From
	tw.Tween = gween.New(tw.From, tw.To, tw.Duration, tw.Ease)
}
