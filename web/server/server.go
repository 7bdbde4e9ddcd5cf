// Package server implements a small preview server: it renders a
// built-in scene scanline by scanline and pushes each finished row to
// the browser over a websocket, so long offline renders can be watched
// as they progress.
package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server handles preview requests
type Server struct {
	port int
}

// New creates a preview server
func New(port int) *Server {
	return &Server{port: port}
}

// Run registers the handlers and serves until the process exits
func (s *Server) Run() {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/ws", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	logger.Log.Info("preview server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
}

// rowMessage is one finished scanline, RGB bytes base64-encoded
type rowMessage struct {
	Type   string `json:"type"` // "start", "row" or "done"
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Row    int    `json:"row,omitempty"`
	Pixels string `json:"pixels,omitempty"`
}

// handleRender upgrades to a websocket and streams one render
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "cornell-box"
	}
	width, _ := strconv.Atoi(query.Get("width"))
	spp, _ := strconv.Atoi(query.Get("spp"))

	sc, err := buildScene(sceneName)
	if err != nil {
		logger.Log.Error("scene construction failed", zap.String("scene", sceneName), zap.Error(err))
		return
	}
	if width > 0 {
		sc.Camera.ImageWidth = width
	}
	if spp > 0 {
		sc.Camera.SamplesPerPixel = spp
	}

	world, err := sc.Root()
	if err != nil {
		logger.Log.Error("scene construction failed", zap.Error(err))
		return
	}

	camera := renderer.NewCamera(sc.Camera)
	integrator := renderer.NewIntegrator(world, sc.LightSet())

	// One writer mutex per connection: the websocket does not allow
	// concurrent writes.
	var writeMu sync.Mutex
	send := func(msg rowMessage) bool {
		writeMu.Lock()
		defer writeMu.Unlock()
		data, err := json.Marshal(msg)
		if err != nil {
			return false
		}
		return conn.WriteMessage(websocket.TextMessage, data) == nil
	}

	if !send(rowMessage{Type: "start", Width: camera.ImageWidth(), Height: camera.ImageHeight()}) {
		return
	}

	for j := 0; j < camera.ImageHeight(); j++ {
		random := rand.New(rand.NewSource(int64(j) + 1))
		rowBytes := make([]byte, 3*camera.ImageWidth())

		for i := 0; i < camera.ImageWidth(); i++ {
			pixelColor := core.Vec3{}
			for sj := 0; sj < camera.SqrtSpp(); sj++ {
				for si := 0; si < camera.SqrtSpp(); si++ {
					ray := camera.GetRay(i, j, si, sj, random)
					pixelColor = pixelColor.Add(
						integrator.RayColor(ray, camera.Config.MaxDepth, camera.Config.Background, random))
				}
			}
			r8, g8, b8 := renderer.ToRGB8(pixelColor.Multiply(camera.PixelSamplesScale()))
			rowBytes[3*i] = r8
			rowBytes[3*i+1] = g8
			rowBytes[3*i+2] = b8
		}

		if !send(rowMessage{
			Type:   "row",
			Row:    j,
			Pixels: base64.StdEncoding.EncodeToString(rowBytes),
		}) {
			return // client went away
		}
	}

	send(rowMessage{Type: "done"})
}

// buildScene constructs the asset-free built-in scenes
func buildScene(name string) (*scene.Scene, error) {
	switch name {
	case "bouncing-spheres":
		return scene.NewBouncingSpheres(42), nil
	case "checkered-spheres":
		return scene.NewCheckeredSpheres(), nil
	case "perlin-spheres":
		return scene.NewPerlinSpheres(42), nil
	case "quads":
		return scene.NewQuads(), nil
	case "simple-light":
		return scene.NewSimpleLight(42), nil
	case "cornell-box":
		return scene.NewCornellBox(), nil
	case "cornell-smoke":
		return scene.NewCornellSmoke(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// handleIndex serves the single-page viewer
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>pathtracer preview</title>
<style>body{background:#222;color:#ddd;font-family:monospace}canvas{image-rendering:pixelated;border:1px solid #555}</style>
</head>
<body>
<p>scene: <select id="scene">
<option>cornell-box</option><option>cornell-smoke</option>
<option>bouncing-spheres</option><option>checkered-spheres</option>
<option>perlin-spheres</option><option>quads</option><option>simple-light</option>
</select>
width <input id="width" value="300" size="4">
spp <input id="spp" value="25" size="4">
<button onclick="start()">render</button> <span id="status"></span></p>
<canvas id="canvas"></canvas>
<script>
let ws;
function start() {
  if (ws) ws.close();
  const scene = document.getElementById('scene').value;
  const width = document.getElementById('width').value;
  const spp = document.getElementById('spp').value;
  ws = new WebSocket('ws://' + location.host + '/ws?scene=' + scene + '&width=' + width + '&spp=' + spp);
  const canvas = document.getElementById('canvas');
  const ctx = canvas.getContext('2d');
  ws.onmessage = (ev) => {
    const msg = JSON.parse(ev.data);
    if (msg.type === 'start') {
      canvas.width = msg.width; canvas.height = msg.height;
      document.getElementById('status').textContent = 'rendering...';
    } else if (msg.type === 'row') {
      const bytes = Uint8Array.from(atob(msg.pixels), c => c.charCodeAt(0));
      const img = ctx.createImageData(canvas.width, 1);
      for (let i = 0; i < canvas.width; i++) {
        img.data[4*i] = bytes[3*i]; img.data[4*i+1] = bytes[3*i+1];
        img.data[4*i+2] = bytes[3*i+2]; img.data[4*i+3] = 255;
      }
      ctx.putImageData(img, 0, msg.row);
    } else if (msg.type === 'done') {
      document.getElementById('status').textContent = 'done';
    }
  };
}
</script>
</body>
</html>`
