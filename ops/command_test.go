package ops_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/ops"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/primitives"
)

func TestCommandLifecycle(t *testing.T) {
	m, err := primitives.Cube(1)
	require.NoError(t, err)

	cmd := ops.NewTranslateVertices(m, m.VertexIDs(), geometry.NewVector3(1, 0, 0))
	require.True(t, cmd.CanUndo())
	require.Equal(t, "translate", cmd.Name())

	require.ErrorIs(t, cmd.Undo(), ops.ErrNotExecuted)
	require.NoError(t, cmd.Execute())
	require.ErrorIs(t, cmd.Execute(), ops.ErrAlreadyExecuted)

	// Undo re-arms the command, so redo is Execute again.
	require.NoError(t, cmd.Undo())
	require.NoError(t, cmd.Execute())
	require.NoError(t, cmd.Undo())
}

func TestIrreversibleCommands(t *testing.T) {
	m, err := primitives.Cube(1)
	require.NoError(t, err)
	edge := m.EdgeKeys()[0]
	face := m.FaceIDs()[0]

	cmds := []ops.Command{
		ops.NewCollapseEdges(m, []mesh.EdgeKey{edge}, ops.CollapseMidpoint),
		ops.NewBevelEdges(m, []mesh.EdgeKey{edge}, 0.1),
		ops.NewBevelFaces(m, []mesh.FaceID{face}, 0.1),
		ops.NewDissolveFaces(m, []mesh.FaceID{face}),
		ops.NewRipFaces(m, []mesh.FaceID{face}),
		ops.NewLoopRemove(m, []mesh.EdgeKey{edge}),
	}
	for _, cmd := range cmds {
		require.False(t, cmd.CanUndo(), cmd.Name())
		require.ErrorIs(t, cmd.Undo(), ops.ErrUndoUnsupported, cmd.Name())
	}
}

func TestReportPartialFailure(t *testing.T) {
	m, err := primitives.Cube(1)
	require.NoError(t, err)
	good := m.FaceIDs()[0]

	cmd := ops.NewExtrudeFaces(m, []mesh.FaceID{good, 999}, 0.5)
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Len(t, rep.Outcomes, 2)
	require.Equal(t, 1, rep.Succeeded())
	require.Equal(t, 1, rep.Failed())
	require.Len(t, rep.Errs(), 1)

	var verr *ops.ValidationError
	require.True(t, errors.As(rep.Errs()[0], &verr))
	require.ErrorIs(t, verr, mesh.ErrFaceNotFound)

	// The good face extruded in full despite the bad target.
	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 10, m.FaceCount())
}

func TestValidationErrorFormatting(t *testing.T) {
	m := mesh.New()
	cmd := ops.NewFlipFaces(m, []mesh.FaceID{7})
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Equal(t, 1, rep.Failed())
	require.Equal(t, "face 7", rep.Outcomes[0].Target)
	require.Contains(t, rep.Outcomes[0].Err.Error(), "flip_faces")
}
