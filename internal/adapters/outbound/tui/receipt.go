package tui

import (
	"fmt"
	"strings"

	"github.com/brewkraft/brewkraft/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── Warm café palette ──
var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
	green  = lipgloss.Color("#22C55E")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(48)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(green)
	separatorLine = faintStyle.Render(strings.Repeat("─", 40))
)

// RenderReceipt renders an itemized receipt for a priced order. The menu is
// needed to break the total back down into its cost components.
func RenderReceipt(order domain.Order, menu domain.Menu) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("brewkraft")
	desc := dimStyle.Render(order.Description)
	total := totalStyle.Render(fmt.Sprintf("%.2f", order.Price))
	b.WriteString(boxStyle.Render(title + "\n" + desc + "\n\n" + total))
	b.WriteString("\n\n")

	// ── Items ──
	baseCost := menu.BasePrices[order.Base] * menu.SizeMultipliers[order.Size]
	writeItem(&b, order.Size+" "+order.Base, baseCost)
	if order.Milk != domain.DefaultMilk {
		writeItem(&b, order.Milk+" milk", menu.MilkSurcharges[order.Milk])
	}
	for _, syrup := range order.Syrups {
		writeItem(&b, syrup+" syrup", menu.SyrupPrice)
	}
	if order.ExtraShots > 0 {
		writeItem(&b, fmt.Sprintf("extra shot ×%d", order.ExtraShots),
			float64(order.ExtraShots)*menu.ShotPrice)
	}
	if order.Iced {
		writeItem(&b, fmt.Sprintf("iced (%.0f%%)", menu.IcedRate*100),
			baseCost*menu.IcedRate)
	}
	if order.Sugar > 0 {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d tsp sugar", order.Sugar)) + "\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		titleStyle.Render(padLabel("total")),
		totalStyle.Render(fmt.Sprintf("%8.2f", order.Price))))

	return b.String()
}

// RenderMenu renders the effective catalogs as a readable menu board.
func RenderMenu(menu domain.Menu) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("brewkraft") + "\n" + dimStyle.Render("menu")))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Bases") + "\n")
	for _, name := range menu.Bases() {
		writeItem(&b, name, menu.BasePrices[name])
	}

	b.WriteString("\n  " + titleStyle.Render("Sizes") + "\n")
	for _, name := range menu.Sizes() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			padLabel(name),
			dimStyle.Render(fmt.Sprintf("×%.1f", menu.SizeMultipliers[name]))))
	}

	b.WriteString("\n  " + titleStyle.Render("Milks") + "\n")
	for _, name := range menu.Milks() {
		writeItem(&b, name, menu.MilkSurcharges[name])
	}

	b.WriteString("\n  " + titleStyle.Render("Extras") + "\n")
	writeItem(&b, "syrup", menu.SyrupPrice)
	writeItem(&b, "extra shot", menu.ShotPrice)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		padLabel("iced"),
		dimStyle.Render(fmt.Sprintf("+%.0f%% of base", menu.IcedRate*100))))

	return b.String()
}

func writeItem(b *strings.Builder, label string, amount float64) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		padLabel(label),
		dimStyle.Render(fmt.Sprintf("%8.2f", amount))))
}

func padLabel(label string) string {
	return fmt.Sprintf("%-28s", label)
}
