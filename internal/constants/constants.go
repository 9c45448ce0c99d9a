package constants

import (
	"time"
)

// *********************************************************************************************************************
// THESE ARE KEY TO SMOOTH SCROLLING (EXACT VALUES DETERMINED BY FEEL)

// FrameInterval is the delay between a frame request and the frame, roughly 60 frames per second
var FrameInterval = 16 * time.Millisecond

// ScrollEndDelay controls how long scrolling must be idle before materialized items are told it ended
var ScrollEndDelay = 300 * time.Millisecond

// PageFlingFraction scales a page-sized distance into a momentum fling velocity that travels about that far
var PageFlingFraction = 0.15

// *********************************************************************************************************************

// ToastDuration controls how long a toast message is shown
const ToastDuration = 5 * time.Second

// DefaultCount is the number of generated records on startup
const DefaultCount = 10000

// DefaultContainerName names the surface the list renders into
const DefaultContainerName = "main"

// AppendCount is the number of records added by the append key
const AppendCount = 100
