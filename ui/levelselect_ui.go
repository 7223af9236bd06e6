package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/leveldata"
	"github.com/automoto/shapeshift/progress"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelSelectUI lists every level; only unlocked ones can be started.
type LevelSelectUI struct {
	UI *ebitenui.UI

	levels []*leveldata.Level
	save   *progress.Tracker

	// Callbacks
	OnSelect func(index int)
	OnQuit   func()

	levelButtons []*widget.Button
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLevelSelectUI creates the level select screen
func NewLevelSelectUI(levels []*leveldata.Level, save *progress.Tracker, onSelect func(int), onQuit func()) *LevelSelectUI {
	lui := &LevelSelectUI{
		levels:   levels,
		save:     save,
		OnSelect: onSelect,
		OnQuit:   onQuit,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (lui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &lui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	lui.levelButtons = make([]*widget.Button, len(lui.levels))
	for i := range lui.levels {
		idx := i // Capture for closure
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(320, 40),
			),
			widget.ButtonOpts.Image(lui.buttonImage()),
			widget.ButtonOpts.Text("", &lui.normalFace, &widget.ButtonTextColor{
				Idle:     cfg.Menu.TextColor,
				Hover:    cfg.Yellow,
				Pressed:  cfg.Menu.TextColor,
				Disabled: cfg.Menu.LockedColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if lui.save.IsUnlocked(idx) && lui.OnSelect != nil {
					lui.OnSelect(idx)
				}
			}),
		)
		lui.levelButtons[i] = btn
		contentContainer.AddChild(btn)
	}

	contentContainer.AddChild(lui.buildButtonsContainer())

	lui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	contentContainer.AddChild(lui.statusLabel)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	lui.UpdateUI()
}

func (lui *LevelSelectUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(155, 32)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Reset progress", &lui.smallFace, &widget.ButtonTextColor{
			Idle: cfg.Menu.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			err := lui.save.Reset()
			lui.UpdateUI()
			if err != nil {
				lui.statusLabel.Label = "Could not save: " + err.Error()
			}
		}),
	)
	container.AddChild(resetButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(155, 32)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &lui.smallFace, &widget.ButtonTextColor{
			Idle: cfg.Menu.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnQuit != nil {
				lui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

// UpdateUI refreshes button labels and lock state from the save data
func (lui *LevelSelectUI) UpdateUI() {
	for i, btn := range lui.levelButtons {
		btn.SetText(LevelLabel(i, lui.levels[i].Name, lui.save.IsUnlocked(i), lui.save.Completed(lui.levels[i].Name)))
		btn.GetWidget().Disabled = !lui.save.IsUnlocked(i)
	}
	lui.statusLabel.Label = "Enter: continue   Esc: quit"
}

// Update runs the ebitenui input handling
func (lui *LevelSelectUI) Update() {
	lui.UI.Update()
}

// LevelLabel is the text shown on a level's button
func LevelLabel(index int, name string, unlocked, completed bool) string {
	switch {
	case !unlocked:
		return fmt.Sprintf("%d. locked", index+1)
	case completed:
		return fmt.Sprintf("%d. %s  (done)", index+1, name)
	}
	return fmt.Sprintf("%d. %s", index+1, name)
}

func (lui *LevelSelectUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}
