package scenario

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// The file is decoded in passes. Pass one reads the grid size (or layout)
// so that rows and cols can be offered as variables to everything else.

// sizeFile captures the grid block's size and leaves the rest for later.
type sizeFile struct {
	Grid   *sizeBlock `hcl:"grid,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type sizeBlock struct {
	Rows   *int     `hcl:"rows,optional"`
	Cols   *int     `hcl:"cols,optional"`
	Layout []string `hcl:"layout,optional"`
	Remain hcl.Body `hcl:",remain"`
}

// endpointBlock is the remainder of the grid block, evaluated with rows and
// cols in scope.
type endpointBlock struct {
	Start  []int `hcl:"start,optional"`
	Finish []int `hcl:"finish,optional"`
}

// bodyFile is every top-level block except grid.
type bodyFile struct {
	Maze    *mazeBlock    `hcl:"maze,block"`
	Terrain *terrainBlock `hcl:"terrain,block"`
	Runs    []*runBlock   `hcl:"run,block"`
	Races   []*raceBlock  `hcl:"race,block"`
}

type mazeBlock struct {
	Algorithm   string   `hcl:"algorithm"`
	Seed        *int64   `hcl:"seed,optional"`
	Border      *bool    `hcl:"border,optional"`
	Repair      *string  `hcl:"repair,optional"`
	WallChance  *float64 `hcl:"wall_chance,optional"`
	BirthLimit  *int     `hcl:"birth_limit,optional"`
	DeathLimit  *int     `hcl:"death_limit,optional"`
	Generations *int     `hcl:"generations,optional"`
	SolidBorder *bool    `hcl:"solid_border,optional"`
}

type terrainBlock struct {
	Seed        *int64   `hcl:"seed,optional"`
	Octaves     *int     `hcl:"octaves,optional"`
	Persistence *float64 `hcl:"persistence,optional"`
	Lacunarity  *float64 `hcl:"lacunarity,optional"`
	Scale       *float64 `hcl:"scale,optional"`
	Intensity   *float64 `hcl:"intensity,optional"`
}

type runBlock struct {
	Name           string `hcl:"name,label"`
	Algorithm      string `hcl:"algorithm"`
	RejectWeighted *bool  `hcl:"reject_weighted,optional"`
}

type raceBlock struct {
	Name           string `hcl:"name,label"`
	Left           string `hcl:"left"`
	Right          string `hcl:"right"`
	RejectWeighted *bool  `hcl:"reject_weighted,optional"`
}

// functions available in every expression.
var functions = map[string]function.Function{
	"min":   stdlib.MinFunc,
	"max":   stdlib.MaxFunc,
	"abs":   stdlib.AbsoluteFunc,
	"floor": stdlib.FloorFunc,
	"ceil":  stdlib.CeilFunc,
}

// evalContext exposes default_seed and, once known, rows and cols.
func evalContext(defaultSeed int64, rows, cols int) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"default_seed": cty.NumberIntVal(defaultSeed),
	}
	if rows > 0 && cols > 0 {
		vars["rows"] = cty.NumberIntVal(int64(rows))
		vars["cols"] = cty.NumberIntVal(int64(cols))
	}
	return &hcl.EvalContext{Variables: vars, Functions: functions}
}
