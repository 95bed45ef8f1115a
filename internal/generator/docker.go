package generator

import (
	"context"

	"github.com/genai-devkit/create-project/internal/defs"
	"github.com/genai-devkit/create-project/internal/scaffold"
	"github.com/genai-devkit/create-project/internal/template"
)

// dockerTasksMarker guards the docker task group in the Makefile.
const dockerTasksMarker = "# ---- docker tasks ----"

// DockerGenerator writes the container configuration: production and
// development Dockerfiles, compose files (with an Ollama sidecar when
// that feature is enabled), ignore file, and helper scripts.
type DockerGenerator struct {
	renderer template.Renderer
}

// NewDockerGenerator creates a DockerGenerator.
func NewDockerGenerator(r template.Renderer) *DockerGenerator {
	return &DockerGenerator{renderer: r}
}

func (g *DockerGenerator) Name() string { return "docker" }

func (g *DockerGenerator) Enabled(rc *template.Context) bool { return rc.Docker }

// Generate writes the Docker artifacts and appends the docker task group
// to the Makefile.
func (g *DockerGenerator) Generate(ctx context.Context, ws *scaffold.Workspace, rc *template.Context) error {
	files := []fileSpec{
		{tmpl: "docker/Dockerfile.tmpl", dest: defs.Dockerfile},
		{tmpl: "docker/Dockerfile.dev.tmpl", dest: defs.DockerfileDev},
		{tmpl: "docker/docker-compose.yml.tmpl", dest: defs.ComposeYML},
		{tmpl: "docker/docker-compose.dev.yml.tmpl", dest: defs.ComposeDevYML},
		{tmpl: "docker/dockerignore.tmpl", dest: defs.DockerIgnore},
		{tmpl: "docker/docker-build.sh.tmpl", dest: "scripts/docker-build.sh", perm: defs.ScriptPerm},
		{tmpl: "docker/docker-run.sh.tmpl", dest: "scripts/docker-run.sh", perm: defs.ScriptPerm},
		{tmpl: "docker/docker-stop.sh.tmpl", dest: "scripts/docker-stop.sh", perm: defs.ScriptPerm},
	}
	if err := renderAll(ctx, g.renderer, ws, rc, files); err != nil {
		return err
	}
	return ensureRenderedBlock(g.renderer, ws, rc, "docker/makefile-docker.mk.tmpl", defs.Makefile, dockerTasksMarker)
}
