/*
Copyright 2022.

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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/common/expfmt"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	controllerruntimemetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
	"sigs.k8s.io/yaml"

	steeringv1alpha1 "github.com/openshift/ste-codec/api/v1alpha1"
	"github.com/openshift/ste-codec/pkg/caps"
	"github.com/openshift/ste-codec/pkg/matcher"
	"github.com/openshift/ste-codec/pkg/metrics"
	"github.com/openshift/ste-codec/pkg/packetmatch"
	"github.com/openshift/ste-codec/pkg/ste"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(steeringv1alpha1.AddToScheme(scheme))
}

func main() {
	var rulePath string
	var capsPath string
	var hwVersion int
	var packetHex string
	var decodeFields bool
	var dumpMetrics bool
	flag.StringVar(&rulePath, "rule", "", "Path of the SteeringRule manifest to compile.")
	flag.StringVar(&capsPath, "caps", "", "Path of the device capabilities file. Without it no ICMP or source port lookup can be built.")
	flag.IntVar(&hwVersion, "hw-version", -1, "Steering format version overriding the one of the rule.")
	flag.StringVar(&packetHex, "packet", "", "Hex encoded Ethernet frame appended to the rule values. The rule mask defaults to an exact match of it.")
	flag.BoolVar(&decodeFields, "decode", false, "Print the STE fields of every tag.")
	flag.BoolVar(&dumpMetrics, "metrics", false, "Print the matcher metrics after compiling.")
	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	if rulePath == "" {
		setupLog.Error(nil, "-rule must be set")
		os.Exit(1)
	}

	rule, err := loadRule(rulePath)
	if err != nil {
		setupLog.Error(err, "unable to load steering rule", "path", rulePath)
		os.Exit(1)
	}
	if hwVersion >= 0 {
		rule.Spec.HardwareVersion = uint8(hwVersion)
	}
	if packetHex != "" {
		if err := addPacket(rule, packetHex); err != nil {
			setupLog.Error(err, "unable to use packet")
			os.Exit(1)
		}
	}

	var deviceCaps ste.Capabilities
	if capsPath != "" {
		c, err := caps.Load(capsPath)
		if err != nil {
			setupLog.Error(err, "unable to load capabilities", "path", capsPath)
			os.Exit(1)
		}
		deviceCaps = c
	}

	stats := metrics.NewStatistics()
	stats.Register()

	stes, err := matcher.Compile(rule, deviceCaps, matcher.Options{
		Log:   ctrl.Log.WithName("matcher"),
		Stats: stats,
	})
	if err != nil {
		setupLog.Error(err, "unable to compile steering rule", "steeringrule", rule.Name, "kind", ste.KindOf(err))
	}

	if err := printRule(os.Stdout, rule); err != nil {
		setupLog.Error(err, "unable to print steering rule")
		os.Exit(1)
	}
	if decodeFields {
		printFields(os.Stdout, stes)
	}
	if dumpMetrics {
		if err := printMetrics(os.Stdout); err != nil {
			setupLog.Error(err, "unable to print metrics")
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// loadRule decodes a SteeringRule manifest in YAML or JSON.
func loadRule(path string) (*steeringv1alpha1.SteeringRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, _, err := serializer.NewCodecFactory(scheme).UniversalDeserializer().Decode(data, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode steering rule")
	}
	rule, ok := obj.(*steeringv1alpha1.SteeringRule)
	if !ok {
		return nil, errors.Errorf("%s is a %T, not a SteeringRule", path, obj)
	}
	return rule, nil
}

// addPacket appends the match value of a sample frame to rule. An empty
// rule mask becomes the exact mask of the frame.
func addPacket(rule *steeringv1alpha1.SteeringRule, packetHex string) error {
	data, err := hex.DecodeString(strings.ReplaceAll(packetHex, " ", ""))
	if err != nil {
		return errors.Wrap(err, "packet is not hex encoded")
	}
	value, err := packetmatch.ValueFromPacket(data)
	if err != nil {
		return err
	}
	if rule.Spec.Mask.IsZero() {
		rule.Spec.Mask = *packetmatch.ExactMask(value)
	}
	rule.Spec.Values = append(rule.Spec.Values, *value)
	return nil
}

func printRule(w io.Writer, rule *steeringv1alpha1.SteeringRule) error {
	out, err := yaml.Marshal(rule)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func printFields(w io.Writer, stes [][]matcher.STE) {
	for i, entries := range stes {
		for _, entry := range entries {
			layout, ok := ste.LayoutOf(entry.Lookup)
			if !ok {
				continue
			}
			fields := layout.Decode(entry.Tag[:])
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(w, "# values[%d] %s (%s)\n", i, entry.Lookup, entry.LuType)
			for _, name := range names {
				fmt.Fprintf(w, "#   %s: %#x\n", name, fields[name])
			}
		}
	}
}

func printMetrics(w io.Writer) error {
	families, err := controllerruntimemetrics.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metrics.MetricSTENamespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
