package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fallencrown/crown-cli/internal/model"
)

// Output formats results for the terminal, in text or json
type Output struct {
	format string
	styles Styles
	now    func() time.Time
}

// NewOutput creates an Output for the given format and theme
func NewOutput(format, theme string, now func() time.Time) *Output {
	if now == nil {
		now = time.Now
	}
	return &Output{
		format: format,
		styles: StylesFor(theme),
		now:    now,
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

// PrintError outputs an error, the toast analog of the web client
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(os.Stderr, string(data))
		return
	}
	fmt.Fprintln(os.Stderr, o.styles.Bad.Render("Error: ")+err.Error())
}

// PrintMessage outputs a simple success message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
		return
	}
	fmt.Println(o.styles.Good.Render(msg))
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Session:
		o.printSession(v)
	case *model.DashboardSnapshot:
		o.printDashboard(v)
	case *model.FarmSnapshot:
		o.printFarm(v)
	case *model.FarmActionResponse:
		o.PrintMessage(v.Message)
		o.printFarm(&v.State)
	case []model.InventoryItem:
		o.printInventory(v)
	case *model.ShopSnapshot:
		o.printShop(v)
	case *model.OnboardingState:
		o.printOnboarding(v)
	case []model.EquipmentItem:
		o.printEquipment(v)
	case []model.PlantType:
		o.printPlants(v)
	case []model.Quest:
		o.printQuests(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s *model.Session) {
	if s == nil || s.User == nil {
		fmt.Println(o.styles.Muted.Render("Not signed in."))
		return
	}
	fmt.Println(o.styles.LabelValue("Account", s.User.Login))
	admin := "no"
	if s.User.IsAdmin {
		admin = "yes"
	}
	fmt.Println(o.styles.LabelValue("Admin", admin))
	if s.Player != nil {
		name := "-"
		if s.Player.Username != nil {
			name = *s.Player.Username
		}
		fmt.Println(o.styles.LabelValue("Hero", fmt.Sprintf("%s (#%d)", name, s.Player.PlayerID)))
		fmt.Println(o.styles.LabelValue("Level", s.Player.Level))
		fmt.Println(o.styles.LabelValue("Gold", o.styles.Gold.Render(fmt.Sprintf("%d", s.Player.Gold))))
	}
}

func (o *Output) printDashboard(d *model.DashboardSnapshot) {
	name := "-"
	if d.Player.Username != nil {
		name = *d.Player.Username
	}
	fmt.Println(o.styles.Title.Render(fmt.Sprintf("%s - level %d", name, d.Player.Level)))
	fmt.Println(o.styles.LabelValue("XP", fmt.Sprintf("%d / %d", d.Player.XP, d.Player.XPToNextLevel)))
	fmt.Println(o.styles.LabelValue("Energy", fmt.Sprintf("%d / %d", d.Player.Energy, d.Player.MaxEnergy)))

	if d.Daily.CanClaim {
		fmt.Println(o.styles.Good.Render("Daily reward is ready to claim."))
	} else if d.Daily.CooldownSecondsLeft > 0 {
		cooldown := time.Duration(d.Daily.CooldownSecondsLeft) * time.Second
		fmt.Println(o.styles.Muted.Render(fmt.Sprintf("Daily reward in %s.", cooldown)))
	}

	fmt.Println()
	fmt.Println(o.styles.Key.Render("Quest: ") + d.Quest.Title)
	if d.Quest.Body != "" {
		fmt.Println(o.styles.Muted.Render(d.Quest.Body))
	}
	for _, c := range d.Quest.Choices {
		reward := ""
		if c.RewardXP > 0 {
			reward = o.styles.Muted.Render(fmt.Sprintf(" (+%d xp)", c.RewardXP))
		}
		fmt.Printf("  [%s] %s%s\n", c.ID, c.Label, reward)
	}

	if len(d.InventoryPreview) > 0 {
		fmt.Println()
		fmt.Println(o.styles.Key.Render("Inventory:"))
		for _, item := range d.InventoryPreview {
			o.printItemLine(item)
		}
	}

	fmt.Println()
	fmt.Println(o.styles.LabelValue(d.Milestone.Label, fmt.Sprintf("%d / %d", d.Milestone.Current, d.Milestone.Target)))
}

func (o *Output) printFarm(f *model.FarmSnapshot) {
	fmt.Println(o.styles.Title.Render(fmt.Sprintf("Farm of player #%d", f.PlayerID)))
	fmt.Println(o.styles.LabelValue("Farming level", fmt.Sprintf("%d (%d / %d xp)", f.Stats.Level, f.Stats.XP, f.Stats.XPToNextLevel)))
	fmt.Println(o.styles.LabelValue("Energy", fmt.Sprintf("%d / %d", f.Stats.Energy, f.Stats.MaxEnergy)))
	fmt.Println(o.styles.LabelValue("Tool", fmt.Sprintf("%s (lv %d, +%d%%)", f.Stats.Tool.Name, f.Stats.Tool.Level, f.Stats.Tool.BonusPercent)))
	fmt.Println(o.styles.LabelValue("Gold", o.styles.Gold.Render(fmt.Sprintf("%d", f.WalletGold))))

	fmt.Println()
	fmt.Println(o.styles.Key.Render("Plots:"))
	now := o.now()
	for _, plot := range f.Plots {
		fmt.Printf("  %s\n", o.plotLine(plot, now))
	}

	if len(f.AvailablePlants) > 0 {
		fmt.Println()
		fmt.Println(o.styles.Key.Render("Plants:"))
		for _, p := range f.AvailablePlants {
			locked := ""
			if !p.IsUnlocked {
				locked = o.styles.Muted.Render(" [locked]")
			}
			fmt.Printf("  #%d %s - %d gold, %d energy, grows %s%s\n",
				p.ID, p.Name, p.SeedCost, p.EnergyCost,
				time.Duration(p.GrowthSeconds)*time.Second, locked)
		}
	}
}

// plotLine renders one plot; readiness comes from the server-supplied ready
// timestamp compared against the local clock.
func (o *Output) plotLine(plot model.FarmPlot, now time.Time) string {
	if !plot.Unlocked {
		return fmt.Sprintf("plot %d: %s", plot.SlotIndex,
			o.styles.Muted.Render(fmt.Sprintf("locked (%d gold, level %d)", plot.UnlockCost, plot.UnlockLevelRequirement)))
	}
	if plot.Crop == nil {
		return fmt.Sprintf("plot %d: empty", plot.SlotIndex)
	}
	crop := plot.Crop
	if crop.Ready(now) {
		return fmt.Sprintf("plot %d: %s - %s", plot.SlotIndex, crop.PlantType.Name, o.styles.Good.Render("ready to harvest"))
	}
	remaining := crop.ReadyAt.Sub(now).Round(time.Second)
	return fmt.Sprintf("plot %d: %s - ready in %s", plot.SlotIndex, crop.PlantType.Name, remaining)
}

func (o *Output) printInventory(items []model.InventoryItem) {
	if len(items) == 0 {
		fmt.Println(o.styles.Muted.Render("Inventory is empty."))
		return
	}
	for _, item := range items {
		o.printItemLine(item)
	}
}

func (o *Output) printItemLine(item model.InventoryItem) {
	equipped := ""
	if item.IsEquipped {
		equipped = o.styles.Good.Render(" [equipped]")
	}
	fmt.Printf("  #%d %s (%s)%s\n", item.ID, item.Name, item.Rarity, equipped)
}

func (o *Output) printShop(s *model.ShopSnapshot) {
	fmt.Println(o.styles.LabelValue("Gold", o.styles.Gold.Render(fmt.Sprintf("%d", s.Wallet.Gold))))
	fmt.Println(o.styles.LabelValue("Gems", fmt.Sprintf("%d", s.Wallet.Gems)))
	fmt.Println()
	if len(s.Offers) == 0 {
		fmt.Println(o.styles.Muted.Render("No offers right now."))
		return
	}
	for _, offer := range s.Offers {
		flags := []string{}
		if offer.Owned {
			flags = append(flags, "owned")
		}
		if offer.IsLimited {
			flags = append(flags, "limited")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = o.styles.Muted.Render(" [" + strings.Join(flags, ", ") + "]")
		}
		fmt.Printf("  #%d %s (%s) - %s gold%s\n",
			offer.OfferID, offer.ItemName, offer.Rarity,
			o.styles.Gold.Render(fmt.Sprintf("%d", offer.PriceGold)), suffix)
	}
}

func (o *Output) printOnboarding(s *model.OnboardingState) {
	if s.Completed {
		fmt.Println(o.styles.Good.Render("Onboarding is complete."))
	} else {
		fmt.Println(o.styles.Warn.Render("Onboarding is not finished yet."))
	}
	for i, step := range s.Steps {
		fmt.Printf("  %d. %s\n", i+1, o.styles.Key.Render(step.Title))
		fmt.Printf("     %s\n", o.styles.Muted.Render(step.Body))
	}
	if s.StarterSeedCharges > 0 {
		fmt.Println(o.styles.LabelValue("Starter seeds", s.StarterSeedCharges))
	}
	if s.CurrentNode != nil {
		fmt.Println(o.styles.Key.Render("Current quest: ") + s.CurrentNode.Title)
	}
}

func (o *Output) printEquipment(items []model.EquipmentItem) {
	for _, item := range items {
		cosmetic := ""
		if item.Cosmetic {
			cosmetic = o.styles.Muted.Render(" [cosmetic]")
		}
		fmt.Printf("  #%d %s - %s %s%s\n", item.ID, item.Name, item.Rarity, item.Slot, cosmetic)
	}
}

func (o *Output) printPlants(plants []model.PlantType) {
	for _, p := range plants {
		fmt.Printf("  #%d %s - grows %s, sells for %d\n",
			p.ID, p.Name, time.Duration(p.GrowthSeconds)*time.Second, p.SellPrice)
	}
}

func (o *Output) printQuests(quests []model.Quest) {
	for _, q := range quests {
		repeatable := ""
		if q.IsRepeatable {
			repeatable = o.styles.Muted.Render(" [repeatable]")
		}
		fmt.Printf("  #%d %s - %d nodes%s\n", q.ID, q.Title, len(q.Nodes), repeatable)
	}
}
