// Package holddrag is a long-press drag-and-drop gesture engine for
// [Ebitengine] and other pointer-driven hosts.
//
// A press on a draggable surface either stays a tap, is abandoned by moving
// too far too soon, or, after being held still for the long-press delay,
// becomes a drag whose ghost follows the pointer until it is dropped on a
// meal slot. Exactly one outcome callback fires per gesture.
//
// # Quick start
//
// A [Board] owns everything a screen of draggable surfaces needs:
//
//	board := holddrag.NewBoard(nil)
//	board.SetPoller(holddrag.NewPoller())
//	board.AddDropZone("lunch", holddrag.HitRect{Width: 320, Height: 80}, 0)
//	board.NewSurface(holddrag.SurfaceConfig{
//		Name:    "entry-1",
//		Bounds:  holddrag.Rect{X: 8, Y: 8, Width: 300, Height: 32},
//		Payload: holddrag.EntryRef{EntryID: "1", Meal: "breakfast"},
//		OnTap:   func(p holddrag.Payload) { openEditor(p) },
//		OnDropResolved: func(p holddrag.Payload, to holddrag.MealID) {
//			diary.Move(p, to)
//		},
//	})
//
// Then call [Board.Update] and [Board.Draw] from the game loop:
//
//	func (g *Game) Update() error        { g.board.Update(holddrag.FrameDelta()); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { drawDiary(s); g.board.Draw(s) }
//
// # Gesture lifecycle
//
// A session moves Idle → Armed → Dragging → Idle. Pressing arms it and
// starts the long-press timer. Moving beyond the tap threshold while Armed
// cancels it; releasing within the threshold is a tap. When the timer fires
// the session is Dragging: one haptic pulse, a ghost is created and the
// pointer stream is followed through board-wide observers, so the drag
// survives leaving the origin surface. Releasing over a meal other than the
// payload's own calls OnDropResolved; anything else ends silently.
//
// Every exit path runs the same cleanup: the timer is stopped, observers are
// removed and the ghost is destroyed, once.
//
// # Single session
//
// All surfaces on a board share one [Registry]. While any session is Armed or
// Dragging, further presses are rejected. Use [Registry.Target] or
// [Registry.IsTargeted] to render the "being targeted" highlight, and
// [Registry.OnChange] to be told when it moves.
//
// # Other hosts
//
// [Dispatcher] is platform neutral. Terminal programs feed it through the
// teadrag package; tests and tools can replay JSON scripts with [LoadScript].
// Timers run on a [FrameClock] advanced by Update, or on a [LoopClock] for
// hosts without a frame tick.
//
// [Ebitengine]: https://ebitengine.org
package holddrag
