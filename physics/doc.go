// Package physics holds the per-frame platforming simulation: pixel-mask
// collision, axis-separated movement with nudge correction, enemy patrol,
// stomp and damage resolution, and the follow camera.
//
// All state advances in fixed ticks. Velocities are in pixels per tick and the
// tuning values assume common.TPS ticks per second; nothing here scales by
// elapsed wall time.
package physics
