package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type stubScene struct{}

func (stubScene) Update() error { return nil }

func (stubScene) Draw(screen *ebiten.Image) {}

type closingScene struct {
	stubScene
	closed int
	err    error
}

func (s *closingScene) Close() error {
	s.closed++
	return s.err
}

func TestGameCloseClosesScene(t *testing.T) {
	scene := &closingScene{err: errors.New("boom")}
	g := &Game{scene: scene}
	if err := g.Close(); !errors.Is(err, scene.err) {
		t.Errorf("Close = %v, want %v", err, scene.err)
	}
	if scene.closed != 1 {
		t.Errorf("scene closed %d times, want 1", scene.closed)
	}
}

func TestGameCloseWithoutCloser(t *testing.T) {
	g := &Game{scene: stubScene{}}
	if err := g.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}
