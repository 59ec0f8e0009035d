package domain_test

import (
	"testing"

	"github.com/brewkraft/brewkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBuilder_AllValidBaseSizePairs(t *testing.T) {
	menu := domain.DefaultMenu()
	for _, base := range menu.Bases() {
		for _, size := range menu.Sizes() {
			b := domain.NewOrderBuilder()
			require.NoError(t, b.SetBase(base))
			require.NoError(t, b.SetSize(size))

			order, err := b.Build()
			require.NoError(t, err, "%s %s", size, base)
			assert.Greater(t, order.Price, 0.0, "%s %s", size, base)
		}
	}
}

func TestOrderBuilder_InvalidChoices(t *testing.T) {
	b := domain.NewOrderBuilder()

	assert.ErrorIs(t, b.SetBase("tea"), domain.ErrInvalidChoice)
	assert.ErrorIs(t, b.SetSize("venti"), domain.ErrInvalidChoice)
	assert.ErrorIs(t, b.SetMilk("almond"), domain.ErrInvalidChoice)

	// Failed calls must not have recorded anything.
	assert.Empty(t, b.Base())
	assert.Empty(t, b.Size())
	assert.Equal(t, domain.DefaultMilk, b.Milk())
}

func TestOrderBuilder_MissingBase(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetSize("small"))

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrMissingBase)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.NotErrorIs(t, err, domain.ErrMissingSize)
}

func TestOrderBuilder_MissingSize(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetBase("latte"))

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrMissingSize)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.NotErrorIs(t, err, domain.ErrMissingBase)
}

func TestOrderBuilder_DuplicateSyrupIsNoOp(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.AddSyrup("vanilla"))
	require.NoError(t, b.AddSyrup("caramel"))
	require.NoError(t, b.AddSyrup("vanilla"), "duplicate must succeed silently")

	assert.Equal(t, []string{"vanilla", "caramel"}, b.Syrups())
}

func TestOrderBuilder_SyrupLimit(t *testing.T) {
	b := domain.NewOrderBuilder()
	for _, s := range []string{"vanilla", "caramel", "hazelnut", "mint"} {
		require.NoError(t, b.AddSyrup(s))
	}

	err := b.AddSyrup("pumpkin")
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	assert.Len(t, b.Syrups(), 4)

	// A duplicate of an existing syrup is still a no-op at the limit.
	assert.NoError(t, b.AddSyrup("mint"))
	assert.Len(t, b.Syrups(), 4)
}

func TestOrderBuilder_SugarBounds(t *testing.T) {
	tests := []struct {
		teaspoons int
		wantErr   bool
	}{
		{0, false}, {3, false}, {5, false}, {6, true}, {-1, true},
	}
	for _, tt := range tests {
		b := domain.NewOrderBuilder()
		err := b.SetSugar(tt.teaspoons)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrOutOfRange, "sugar %d", tt.teaspoons)
			assert.Equal(t, 0, b.Sugar(), "sugar %d must not stick", tt.teaspoons)
		} else {
			require.NoError(t, err, "sugar %d", tt.teaspoons)
			assert.Equal(t, tt.teaspoons, b.Sugar())
		}
	}
}

func TestOrderBuilder_ShotsAccumulate(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.AddShot(1))
	require.NoError(t, b.AddShot(1))
	assert.Equal(t, 2, b.ExtraShots())

	// Pushing past the limit fails and leaves the total unchanged.
	err := b.AddShot(2)
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	assert.Equal(t, 2, b.ExtraShots())

	assert.ErrorIs(t, b.AddShot(-1), domain.ErrInvalidArgument)
	assert.Equal(t, 2, b.ExtraShots())

	require.NoError(t, b.AddShot(1))
	assert.Equal(t, 3, b.ExtraShots())
}

func TestOrderBuilder_IcedSurcharge(t *testing.T) {
	menu := domain.DefaultMenu()
	for _, base := range menu.Bases() {
		for _, size := range menu.Sizes() {
			hot := domain.NewOrderBuilder()
			require.NoError(t, hot.SetBase(base))
			require.NoError(t, hot.SetSize(size))
			hotOrder, err := hot.Build()
			require.NoError(t, err)

			hot.SetIced(true)
			icedOrder, err := hot.Build()
			require.NoError(t, err)

			baseCost := menu.BasePrices[base] * menu.SizeMultipliers[size]
			assert.Greater(t, icedOrder.Price, hotOrder.Price)
			assert.InDelta(t, baseCost*menu.IcedRate, icedOrder.Price-hotOrder.Price, 0.005,
				"%s %s", size, base)
		}
	}
}

func TestOrderBuilder_ReuseWithoutMutation(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetBase("cappuccino"))
	require.NoError(t, b.SetSize("large"))
	require.NoError(t, b.AddSyrup("vanilla"))

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Distinct snapshots: mutating one's syrup slice must not leak into
	// the other or back into the builder.
	first.Syrups[0] = "caramel"
	assert.Equal(t, []string{"vanilla"}, second.Syrups)
	assert.Equal(t, []string{"vanilla"}, b.Syrups())
}

func TestOrderBuilder_ReuseWithMutation(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetBase("espresso"))
	require.NoError(t, b.SetSize("medium"))
	require.NoError(t, b.SetMilk("oat"))
	require.NoError(t, b.AddShot(1))

	first, err := b.Build()
	require.NoError(t, err)

	// Prior choices persist across builds; only overwritten ones change.
	require.NoError(t, b.SetMilk("soy"))
	require.NoError(t, b.AddShot(1))
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "oat", first.Milk)
	assert.Equal(t, 1, first.ExtraShots)
	assert.Equal(t, "soy", second.Milk)
	assert.Equal(t, 2, second.ExtraShots)
	assert.Equal(t, first.Base, second.Base)
	assert.NotEqual(t, first.Price, second.Price)
}

func TestOrderBuilder_EndToEnd(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetBase("espresso"))
	require.NoError(t, b.SetSize("medium"))
	require.NoError(t, b.SetMilk("oat"))
	require.NoError(t, b.AddSyrup("vanilla"))
	require.NoError(t, b.AddSyrup("caramel"))
	require.NoError(t, b.SetSugar(2))
	require.NoError(t, b.AddShot(1))
	b.SetIced(true)

	order, err := b.Build()
	require.NoError(t, err)

	// 200×1.2 = 240 base, +60 oat, +80 syrups, +70 shot, +48 iced.
	assert.InDelta(t, 498.00, order.Price, 0.001)
	assert.Equal(t,
		"medium espresso with oat milk +vanilla,caramel syrup (iced) 2 tsp sugar +1 extra shot(s)",
		order.Description)
}

func TestOrderBuilder_ResetExtras(t *testing.T) {
	b := domain.NewOrderBuilder()
	require.NoError(t, b.SetBase("latte"))
	require.NoError(t, b.SetSize("small"))
	require.NoError(t, b.SetMilk("soy"))
	require.NoError(t, b.AddSyrup("hazelnut"))
	require.NoError(t, b.SetSugar(4))
	require.NoError(t, b.AddShot(2))
	b.SetIced(true)

	b.ResetExtras()

	assert.Equal(t, "latte", b.Base())
	assert.Equal(t, "small", b.Size())
	assert.Equal(t, domain.DefaultMilk, b.Milk())
	assert.Empty(t, b.Syrups())
	assert.Equal(t, 0, b.Sugar())
	assert.Equal(t, 0, b.ExtraShots())
	assert.False(t, b.Iced())

	order, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "small latte", order.Description)
	assert.InDelta(t, 300.00, order.Price, 0.001)
}

func TestOrderBuilder_CustomMenu(t *testing.T) {
	menu := domain.DefaultMenu()
	menu = domain.MenuConfig{
		Bases: map[string]float64{"flat white": 310.0},
	}.ApplyTo(menu)

	b := domain.NewOrderBuilderWithMenu(menu)
	require.NoError(t, b.SetBase("flat white"))
	require.NoError(t, b.SetSize("small"))

	order, err := b.Build()
	require.NoError(t, err)
	assert.InDelta(t, 310.00, order.Price, 0.001)

	// The default menu must not have picked up the custom base.
	assert.ErrorIs(t, domain.NewOrderBuilder().SetBase("flat white"), domain.ErrInvalidChoice)
}
