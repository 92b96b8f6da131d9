// Package softpipe is a software (CPU-only) 3D triangle rasterization
// engine. It converts transformed, shaded triangle meshes into a packed
// 2D color buffer through a programmable vertex/fragment pipeline,
// order-independent transparency compositing, and an optional
// edge-aware anti-aliasing pass.
//
// # Quick start
//
//	meshes, _ := mesh.DecodeOBJ(file)
//
//	r := softpipe.New(1280, 720, softpipe.Options{
//	    Raster: raster.Options{CullBackfaces: true},
//	    Post:   softpipe.PostProcessorOptions{FXAA: true},
//	})
//	defer r.Close()
//
//	r.Storage().SetMat4s([]mgl32.Mat4{camera.ViewProjection()})
//	r.Storage().SetTexture2Ds([]*raster.Texture2D{tex})
//	r.DrawMesh(meshes[0], shader.Texture{})
//
//	buf := make([]uint32, 1280*720)
//	if err := r.Render(buf); err != nil {
//	    log.Fatal(err)
//	}
//
// Each frame is any number of DrawMesh calls followed by one Render,
// which resolves depth and transparency, runs post-processing, and
// resets the engine for the next frame. Output pixels are packed
// 0xRRGGBB values, row-major, top-left origin.
//
// # Collaborators
//
// Mesh file parsing, window management, input handling, and texture
// image decoding live outside the core: the engine consumes in-memory
// geometry (package mesh), decoded RGBA images (raster.NewTexture2D),
// and transform matrices, and hands back a pixel buffer. The mesh
// package's OBJ decoder and cmd/meshview are reference collaborators.
//
// # Concurrency
//
// Rendering is synchronous per frame with internal data parallelism:
// the pixel grid is statically partitioned into row bands across a
// fixed worker pool. Shaders run concurrently on all workers and must
// be side-effect-free, reading only from uniform storage.
package softpipe
