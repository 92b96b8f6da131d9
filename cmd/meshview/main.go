// Command meshview renders a Wavefront OBJ mesh with the softpipe
// engine in an interactive window.
//
// Controls: W/S move forward/back, A/D strafe, left/right arrows turn.
//
//	meshview -obj model.obj -texture diffuse.png
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/softpipe/softpipe"
	"github.com/softpipe/softpipe/mesh"
	"github.com/softpipe/softpipe/raster"
	"github.com/softpipe/softpipe/shader"
)

const (
	movementSpeed = 0.05
	rotationSpeed = 0.02
)

func main() {
	var (
		objPath = flag.String("obj", "", "OBJ mesh file (required)")
		texPath = flag.String("texture", "", "texture image (png/jpeg/bmp/tiff); solid white if omitted")
		width   = flag.Int("width", 1280, "window width")
		height  = flag.Int("height", 720, "window height")
		cull    = flag.Bool("cull", true, "cull backfaces")
		fxaa    = flag.Bool("fxaa", true, "enable the anti-aliasing pass")
		verbose = flag.Bool("v", false, "log per-frame phase timings")
	)
	flag.Parse()

	if *objPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		softpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g, err := newGame(*objPath, *texPath, *width, *height, *cull, *fxaa)
	if err != nil {
		log.Fatal(err)
	}
	defer g.renderer.Close()

	ebiten.SetWindowTitle("meshview")
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	renderer *softpipe.Renderer
	meshes   []*mesh.Mesh
	camera   *softpipe.Camera

	width  int
	height int
	buf    []uint32
	img    *image.RGBA
	frame  *ebiten.Image
}

func newGame(objPath, texPath string, width, height int, cull, fxaa bool) (*game, error) {
	meshes, err := loadMeshes(objPath)
	if err != nil {
		return nil, err
	}

	tex, err := loadTexture(texPath)
	if err != nil {
		return nil, err
	}

	r := softpipe.New(width, height, softpipe.Options{
		Raster: raster.Options{CullBackfaces: cull},
		Post:   softpipe.PostProcessorOptions{FXAA: fxaa},
	})
	r.Storage().SetTexture2Ds([]*raster.Texture2D{tex})

	camera := softpipe.NewCamera(
		60*math.Pi/180,
		float32(width)/float32(height),
		0.1, 100,
	)
	camera.Position = mgl32.Vec3{0, 0, 1}

	return &game{
		renderer: r,
		meshes:   meshes,
		camera:   camera,
		width:    width,
		height:   height,
		buf:      make([]uint32, width*height),
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		frame:    ebiten.NewImage(width, height),
	}, nil
}

func loadMeshes(path string) ([]*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meshes, err := mesh.DecodeOBJ(f)
	if err != nil {
		return nil, err
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no meshes in %s", path)
	}
	return meshes, nil
}

// loadTexture decodes the image at path, or builds a 1×1 white texture
// when path is empty.
func loadTexture(path string) (*raster.Texture2D, error) {
	if path == "" {
		white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		white.Pix[0], white.Pix[1], white.Pix[2], white.Pix[3] = 0xff, 0xff, 0xff, 0xff
		return raster.NewTexture2D(white), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return raster.NewTexture2D(img), nil
}

func (g *game) Update() error {
	yaw := g.camera.Rotation[1]
	sin, cos := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camera.Position[0] += movementSpeed * sin
		g.camera.Position[2] -= movementSpeed * cos
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camera.Position[0] -= movementSpeed * sin
		g.camera.Position[2] += movementSpeed * cos
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.Position[0] -= movementSpeed * cos
		g.camera.Position[2] -= movementSpeed * sin
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.Position[0] += movementSpeed * cos
		g.camera.Position[2] += movementSpeed * sin
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camera.Rotation[1] -= rotationSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camera.Rotation[1] += rotationSpeed
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Storage().SetMat4s([]mgl32.Mat4{g.camera.ViewProjection()})
	for _, m := range g.meshes {
		g.renderer.DrawMesh(m, shader.Texture{})
	}
	if err := g.renderer.Render(g.buf); err != nil {
		log.Fatal(err)
	}

	// Packed 0xRRGGBB to RGBA bytes.
	for i, p := range g.buf {
		j := i * 4
		g.img.Pix[j+0] = uint8(p >> 16)
		g.img.Pix[j+1] = uint8(p >> 8)
		g.img.Pix[j+2] = uint8(p)
		g.img.Pix[j+3] = 0xff
	}
	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
