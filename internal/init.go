package internal

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/vl/internal/collection"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/itemview"
	"github.com/robinovitch61/vl/internal/scroller"
	"github.com/robinovitch61/vl/internal/style"
	"github.com/robinovitch61/vl/internal/surface"
	"github.com/robinovitch61/vl/internal/vlist"
)

const emptyText = "No records. Press R to generate or a to append"

// initialize builds the collection, surface, scroller and list once the terminal size is known
func (m Model) initialize() (Model, tea.Cmd) {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")

	style.DebugColors()

	records, err := collection.New(collection.Generate(m.config.Count, m.config.Seed)...)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.records = records
	m.state.nextNum = m.config.Count

	m.topBarHeight = lipgloss.Height(m.topBar())
	m.surface = surface.New(m.width, max(0, m.height-m.topBarHeight))

	if m.config.ExternalScroller {
		m.momentum = scroller.NewMomentum(m.surface)
		m.scroller = m.momentum
	} else {
		m.scroller = scroller.NewNative(m.surface)
	}

	m.driver = &teaDriver{}
	itemStyles := style.ItemStyles()
	list, err := vlist.New(m.records, m.surface, m.scroller, m.driver, vlist.Options{
		ContainerName:            m.config.ContainerName,
		ElementsOffset:           m.config.ElementsOffset,
		EstimatedItemHeight:      m.config.EstimatedItemHeight,
		Threshold:                m.config.Threshold,
		ModelStoresExpandedState: m.config.ModelStoresExpandedState,
		UseExternalScroller:      m.config.ExternalScroller,
		EnableScrollEnd:          m.config.ScrollEnd,
		ScrollEndDelay:           constants.ScrollEndDelay,
		ChildView: func(model vlist.Model) vlist.View {
			r, ok := model.(*collection.Record)
			if !ok {
				return nil
			}
			return itemview.NewItem(r, m.surface.Width, itemStyles)
		},
		EmptyView: func() vlist.View {
			return itemview.NewEmpty(emptyText, style.EmptyStyle)
		},
	})
	if err != nil {
		m.err = fmt.Errorf("creating list: %w", err)
		return m, nil
	}
	m.list = list
	m.driver.listID = list.ID()

	m.selectIndex(0)
	m.list.Render()
	m.initialized = true
	return m, m.driver.flush()
}
