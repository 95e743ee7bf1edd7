// Package tinsel is a renderer-agnostic morphing core for decorative 3D
// scenes whose entities drift between two spatial arrangements: a dispersed
// "scattered" cloud and an assembled spiral "formation".
//
// Tinsel computes positions, rotations, and scales; it never draws. A host
// renderer (Ebitengine, OpenGL, anything) reads the per-frame transforms and
// is responsible for pixels.
//
// # Quick start
//
// Build a scene from the default description and drive it from your game
// loop:
//
//	scene, err := tinsel.DefaultSceneFile().Build(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// each frame:
//	scene.Update(elapsed, dt, tinsel.ModeFormation)
//	for _, c := range scene.Clusters() {
//		for _, tr := range c.Transforms() {
//			// hand tr.Position / tr.Rotation / tr.Scale to your renderer
//		}
//	}
//
// Flip the mode to tinsel.ModeScattered and every subsystem glides back to
// its cloud arrangement while secondary motion briefly bursts.
//
// # Pieces
//
// [SampleSphereVolume] and [SampleFormationCurve] generate the two target
// positions per entity. [Cluster] owns a batched population and blends the
// two targets by a smoothed progress scalar ([Transition]). [Sway] layers
// bob, drift, and pulse on top. [Burst] temporarily doubles spin after a
// dispersal. [OrbitController] performs the matching smooth transition for
// the camera's viewing distance. [Scene] wires it all together, and
// [SceneFile] describes a whole scene in YAML.
//
// See examples/orbit for a runnable Ebitengine demo.
package tinsel
