/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

var topCmd = &cobra.Command{
	Use:   "top [from] [to (optional)]",
	Short: "Lists the most-streamed tracks",
	Long: `Sorted by stream count. An optional date or date range restricts
results by release date. Date strings look like 'yyyy', 'yyyy-mm', or
'yyyy-mm-dd'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopTracks(os.Stdout, args, viper.GetInt("number"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topCmd)

	var number int
	topCmd.Flags().IntVarP(&number, "number", "n", 10, "number of results to return")
	viper.BindPFlag("number", topCmd.Flags().Lookup("number"))
}

type rankedTrack struct {
	name     string
	artist   string
	released time.Time
	streams  float64
}

func printTopTracks(out io.Writer, args []string, numToReturn int) error {
	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return err
	}

	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	tracks, err := rankedTracks(ds, start, end)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Track", "Artist", "Released", "Streams"})
	shown := 0
	for _, t := range tracks {
		if shown >= numToReturn {
			break
		}
		table.Append([]string{
			t.name,
			t.artist,
			t.released.Format("2006-01-02"),
			fmt.Sprintf("%.0f", t.streams),
		})
		shown++
	}
	table.Render()

	const dateFormat = "2006-01-02"
	fmt.Fprintf(out, "Found %d tracks released from %s to %s\n",
		len(tracks), start.Format(dateFormat), end.Format(dateFormat))
	return nil
}

// rankedTracks assembles release dates from the released_* columns, filters
// to [start, end), and sorts by streams descending.
func rankedTracks(ds *dataset.Dataset, start, end time.Time) ([]rankedTrack, error) {
	names, err := ds.Column(dataset.ColTrackName)
	if err != nil {
		return nil, err
	}
	artists, err := ds.Column(dataset.ColArtistName)
	if err != nil {
		return nil, err
	}
	streams, err := ds.Floats(dataset.ColStreams)
	if err != nil {
		return nil, err
	}
	years, err := ds.Floats(dataset.ColReleasedYear)
	if err != nil {
		return nil, err
	}
	months, err := ds.Floats(dataset.ColReleasedMonth)
	if err != nil {
		return nil, err
	}
	days, err := ds.Floats(dataset.ColReleasedDay)
	if err != nil {
		return nil, err
	}

	nameRecs := names.Records()
	artistRecs := artists.Records()

	var tracks []rankedTrack
	for i := 0; i < ds.Nrow(); i++ {
		if math.IsNaN(years[i]) || math.IsNaN(streams[i]) {
			continue
		}
		month, day := 1, 1
		if !math.IsNaN(months[i]) && months[i] >= 1 {
			month = int(months[i])
		}
		if !math.IsNaN(days[i]) && days[i] >= 1 {
			day = int(days[i])
		}
		released := time.Date(int(years[i]), time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if released.Before(start) || !released.Before(end) {
			continue
		}
		tracks = append(tracks, rankedTrack{
			name:     nameRecs[i],
			artist:   artistRecs[i],
			released: released,
			streams:  streams[i],
		})
	}
	sort.Slice(tracks, func(i, j int) bool {
		if tracks[i].streams == tracks[j].streams {
			return tracks[i].name < tracks[j].name
		}
		return tracks[i].streams > tracks[j].streams
	})
	return tracks, nil
}
