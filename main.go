/*
This is an example of application that will use the
math package to prepare uniform buffers for a renderer
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

type Camera struct {
	Eye    []float32 `toml:"eye"`
	Target []float32 `toml:"target"`
	Up     []float32 `toml:"up"`
	Fov    float32   `toml:"fov"`
	Aspect float32   `toml:"aspect"`
	Near   float32   `toml:"near"`
	Far    float32   `toml:"far"`
}

type Object struct {
	Name     string    `toml:"name"`
	Position []float32 `toml:"position"`
	Axis     []float32 `toml:"axis"`
	Angle    float32   `toml:"angle"`
	Scale    []float32 `toml:"scale"`
}

type Scene struct {
	Camera  Camera   `toml:"camera"`
	Objects []Object `toml:"objects"`
}

func loadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene := &Scene{}
	if err := toml.Unmarshal(raw, scene); err != nil {
		return nil, err
	}
	return scene, nil
}

func printScene(scene *Scene) error {
	eye, err := math.VectorFromSlice(3, scene.Camera.Eye)
	if err != nil {
		return err
	}
	target, err := math.VectorFromSlice(3, scene.Camera.Target)
	if err != nil {
		return err
	}
	up, err := math.VectorFromSlice(3, scene.Camera.Up)
	if err != nil {
		return err
	}

	view, err := math.NewMat4LookAt(eye, target, up)
	if err != nil {
		return err
	}
	proj := math.NewMat4Perspective(scene.Camera.Fov, scene.Camera.Aspect, scene.Camera.Near, scene.Camera.Far)

	viewBuf, _ := view.F32Mat4()
	projBuf, _ := proj.F32Mat4()
	fmt.Printf("view (%d bytes): %v\n", view.ByteLen(), viewBuf)
	fmt.Printf("projection (%d bytes): %v\n", proj.ByteLen(), projBuf)

	for _, obj := range scene.Objects {
		model, err := modelMatrix(obj)
		if err != nil {
			return fmt.Errorf("object %q: %w", obj.Name, err)
		}
		mvp, err := proj.Mul(view)
		if err != nil {
			return err
		}
		mvp, err = mvp.Mul(model)
		if err != nil {
			return err
		}
		buf, _ := mvp.F32Mat4()
		fmt.Printf("%s mvp (%d bytes): %v\n", obj.Name, mvp.ByteLen(), buf)

		normal, err := model.Normal(true)
		if err != nil {
			core.LogWarn("object %q has a non-invertible model matrix, skipping normal matrix", obj.Name)
			continue
		}
		nbuf, _ := normal.F32Mat3()
		fmt.Printf("%s normal (%d bytes): %v\n", obj.Name, normal.ByteLen(), nbuf)
	}
	return nil
}

// modelMatrix composes translate * rotate * scale for one object.
func modelMatrix(obj Object) (math.Matrix, error) {
	position, err := math.VectorFromSlice(3, obj.Position)
	if err != nil {
		return nil, err
	}
	axis, err := math.VectorFromSlice(3, obj.Axis)
	if err != nil {
		return nil, err
	}
	scale, err := math.VectorFromSlice(3, obj.Scale)
	if err != nil {
		return nil, err
	}

	t, err := math.NewMat4Translation(position)
	if err != nil {
		return nil, err
	}
	r, err := math.NewMat4Rotation(axis, obj.Angle)
	if err != nil {
		return nil, err
	}
	s, err := math.NewMat4Scale(scale)
	if err != nil {
		return nil, err
	}

	out, err := t.Mul(r)
	if err != nil {
		return nil, err
	}
	return out.Mul(s)
}

func watchScene(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	core.LogInfo("watching %s for changes", path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			scene, err := loadScene(path)
			if err != nil {
				core.LogError("reload %s: %v", path, err)
				continue
			}
			if err := printScene(scene); err != nil {
				core.LogError("recompute %s: %v", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			core.LogError("watcher: %v", err)
		case <-sigCh:
			core.LogInfo("shutting down")
			return nil
		}
	}
}

func main() {
	scenePath := flag.String("scene", "scene.toml", "path to the scene description")
	watch := flag.Bool("watch", false, "recompute when the scene file changes")
	flag.Parse()

	scene, err := loadScene(*scenePath)
	if err != nil {
		core.LogFatal("load %s: %v", *scenePath, err)
	}
	if err := printScene(scene); err != nil {
		core.LogFatal("compute %s: %v", *scenePath, err)
	}

	if *watch {
		if err := watchScene(*scenePath); err != nil {
			core.LogFatal("watch %s: %v", *scenePath, err)
		}
	}
}
