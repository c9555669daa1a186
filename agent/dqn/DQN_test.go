package dqn

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/nextframe/ale"
	"github.com/samuelfneumann/nextframe/expreplay"
	"github.com/samuelfneumann/nextframe/frame"
	"github.com/samuelfneumann/nextframe/timestep"
)

const (
	batch = 4
	depth = 2
	size  = 2
)

// fakeModel is an Approximator which records what it is trained on.
// Its prediction for each row is the row's most recent input frame,
// except that rows other than the first are filled with -1.
type fakeModel struct {
	batch, depth, size int

	inputs, targets []*tensor.Dense
	lastPredict     *tensor.Dense
}

func newFakeModel() *fakeModel {
	return &fakeModel{batch: batch, depth: depth, size: size}
}

func (f *fakeModel) BatchSize() int { return f.batch }

func (f *fakeModel) InputShape() tensor.Shape {
	return tensor.Shape{f.batch, f.depth, f.size, f.size}
}

func (f *fakeModel) TargetShape() tensor.Shape {
	return tensor.Shape{f.batch, f.size, f.size}
}

func (f *fakeModel) Predict(input *tensor.Dense) (*tensor.Dense, error) {
	f.lastPredict = input
	data := input.Data().([]float64)
	frameLen := f.size * f.size
	out := make([]float64, f.batch*frameLen)
	for i := range out {
		out[i] = -1
	}
	copy(out[:frameLen], data[(f.depth-1)*frameLen:f.depth*frameLen])
	return tensor.New(tensor.WithShape(f.TargetShape()...),
		tensor.WithBacking(out)), nil
}

func (f *fakeModel) TrainStep(input, target *tensor.Dense) error {
	f.inputs = append(f.inputs, input)
	f.targets = append(f.targets, target)
	return nil
}

func (f *fakeModel) LoadWeights(string) error  { return nil }
func (f *fakeModel) SaveState(string) error    { return nil }
func (f *fakeModel) RestoreState(string) error { return nil }

func config() Config {
	return Config{
		BatchSize:   batch,
		Depth:       depth,
		FrameSize:   size,
		Actions:     ale.Minimal(),
		Epsilon:     0.1,
		ExpReplay:   expreplay.Config{Capacity: 10, Seed: 1},
		MinReplay:   2,
		UpdateEvery: 2,
	}
}

func constant(v uint8) *frame.Frame {
	return frame.Generate(size, func(int, int) uint8 { return v })
}

func stackOf(t *testing.T, values ...uint8) frame.Stack {
	frames := make([]*frame.Frame, len(values))
	for i, v := range values {
		frames[i] = constant(v)
	}
	s, err := frame.NewStack(frames...)
	require.NoError(t, err)
	return s
}

func newDQN(t *testing.T, model *fakeModel) *DQN {
	d, err := New(config(), model, zerolog.Nop(), 1)
	require.NoError(t, err)
	return d
}

func TestUpdateRefusesEmptyMemory(t *testing.T) {
	model := newFakeModel()
	d := newDQN(t, model)

	err := d.Update()
	require.Error(t, err)
	require.True(t, expreplay.IsEmptyBuffer(err))
	require.Empty(t, model.inputs)
	require.Equal(t, 0, d.Updates())
}

func TestUpdateTargets(t *testing.T) {
	model := newFakeModel()
	d := newDQN(t, model)

	// The only stored transition is terminal, so every sampled row has
	// a zero target
	term, err := timestep.NewTerminal(stackOf(t, 3, 4), ale.Fire, 1)
	require.NoError(t, err)
	require.NoError(t, d.AddTransition(term))

	require.NoError(t, d.Update())
	require.Equal(t, 1, d.Updates())
	require.Len(t, model.targets, 1)

	input, target := model.inputs[0], model.targets[0]
	require.Equal(t, tensor.Shape{batch, depth, size, size}, input.Shape())
	require.Equal(t, tensor.Shape{batch, size, size}, target.Shape())
	for _, v := range target.Data().([]float64) {
		require.Equal(t, 0.0, v)
	}
	for row := 0; row < batch; row++ {
		for k, want := range []float64{3, 4} {
			for p := 0; p < size*size; p++ {
				v, err := input.At(row, k, p/size, p%size)
				require.NoError(t, err)
				require.Equal(t, want, v)
			}
		}
	}
}

func TestAssembleOrder(t *testing.T) {
	mem, err := expreplay.Config{Capacity: 5}.Create()
	require.NoError(t, err)

	a, err := timestep.NewTransition(stackOf(t, 1, 2), ale.Noop, 0,
		constant(5))
	require.NoError(t, err)
	b, err := timestep.NewTerminal(stackOf(t, 7, 8), ale.Noop, 0)
	require.NoError(t, err)
	require.NoError(t, mem.Add(a))
	require.NoError(t, mem.Add(b))

	m := NewMinibatch(3, depth, size)
	input, target, err := m.Assemble(mem, []int{1, 0, 1})
	require.NoError(t, err)

	in := input.Data().([]float64)
	want := []float64{
		7, 7, 7, 7, 8, 8, 8, 8,
		1, 1, 1, 1, 2, 2, 2, 2,
		7, 7, 7, 7, 8, 8, 8, 8,
	}
	require.Equal(t, want, in)
	require.Equal(t, []float64{0, 0, 0, 0, 5, 5, 5, 5, 0, 0, 0, 0},
		target.Data().([]float64))

	_, _, err = m.Assemble(mem, []int{0, 1})
	require.Error(t, err)
	_, _, err = m.Assemble(mem, []int{0, 1, 2})
	require.Error(t, err)

	wrongDepth := NewMinibatch(1, 3, size)
	_, _, err = wrongDepth.Assemble(mem, []int{0})
	require.Error(t, err)
}

func TestPredictUsesFirstRow(t *testing.T) {
	model := newFakeModel()
	d := newDQN(t, model)

	values, err := d.Predict(stackOf(t, 9, 6))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 6, 6, 6}, values)

	// Rows other than the first are zero
	data := model.lastPredict.Data().([]float64)
	stackLen := depth * size * size
	for _, v := range data[stackLen:] {
		require.Equal(t, 0.0, v)
	}

	_, err = d.Predict(stackOf(t, 1, 2, 3))
	require.Error(t, err)
}

func TestShapeMismatch(t *testing.T) {
	model := newFakeModel()
	model.batch = batch + 1
	_, err := New(config(), model, zerolog.Nop(), 1)
	require.Error(t, err)

	model = newFakeModel()
	model.depth = depth + 1
	_, err = New(config(), model, zerolog.Nop(), 1)
	require.Error(t, err)

	model = newFakeModel()
	model.size = size + 1
	_, err = New(config(), model, zerolog.Nop(), 1)
	require.Error(t, err)

	_, err = New(config(), nil, zerolog.Nop(), 1)
	require.Error(t, err)
}

func TestObserveSchedule(t *testing.T) {
	model := newFakeModel()
	d := newDQN(t, model)

	tr, err := timestep.NewTransition(stackOf(t, 1, 2), ale.Noop, 0,
		constant(3))
	require.NoError(t, err)

	// MinReplay = 2 and UpdateEvery = 2: updates after the 2nd, 4th,
	// and 6th observations
	for i := 1; i <= 6; i++ {
		require.NoError(t, d.Observe(tr))
		require.Equal(t, i/2, d.Updates(), "observation %v", i)
	}

	d.Eval()
	require.True(t, d.IsEval())
	require.NoError(t, d.Observe(tr))
	require.NoError(t, d.Observe(tr))
	require.Equal(t, 3, d.Updates())

	d.Train()
	require.False(t, d.IsEval())
}

func TestAddTransitionShape(t *testing.T) {
	d := newDQN(t, newFakeModel())
	tr, err := timestep.NewTerminal(stackOf(t, 1), ale.Noop, 0)
	require.NoError(t, err)
	require.Error(t, d.AddTransition(tr))
	require.Equal(t, 0, d.Memory().Len())
}

func TestSelectActionLegal(t *testing.T) {
	d := newDQN(t, newFakeModel())
	s := stackOf(t, 0, 0)
	for i := 0; i < 100; i++ {
		require.Contains(t, ale.Minimal(), d.SelectAction(s))
	}
}

func TestRewardByAction(t *testing.T) {
	d := newDQN(t, newFakeModel())
	require.Equal(t, ale.Minimal(), d.Actions())
	require.Equal(t, []float64{0, 0, 0, 0}, d.RewardByAction())

	observed := []struct {
		action ale.Action
		reward float64
	}{
		{ale.Fire, 1}, {ale.Fire, 0}, {ale.Left, -1}, {ale.Noop, 0.5},
	}
	for _, o := range observed {
		tr, err := timestep.NewTerminal(stackOf(t, 1, 2), o.action, o.reward)
		require.NoError(t, err)
		require.NoError(t, d.AddTransition(tr))
	}

	// Minimal order is Noop, Fire, Right, Left
	require.Equal(t, []float64{0.5, 0.5, 0, -1}, d.RewardByAction())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, config().Validate())

	bad := []func(*Config){
		func(c *Config) { c.BatchSize = 0 },
		func(c *Config) { c.Depth = 0 },
		func(c *Config) { c.Actions = nil },
		func(c *Config) { c.Epsilon = 2 },
		func(c *Config) { c.MinReplay = 11 },
		func(c *Config) { c.UpdateEvery = 0 },
		func(c *Config) { c.ExpReplay.Capacity = 0 },
	}
	for _, modify := range bad {
		c := config()
		modify(&c)
		require.Error(t, c.Validate())
	}
}
