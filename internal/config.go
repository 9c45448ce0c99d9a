package internal

type Config struct {
	Count                    int
	EstimatedItemHeight      int
	ElementsOffset           int
	Threshold                int
	ContainerName            string
	ModelStoresExpandedState bool
	ExternalScroller         bool
	ScrollEnd                bool
	Seed                     int64
	Version                  string
}
