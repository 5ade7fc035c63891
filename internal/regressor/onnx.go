//go:build cgo
// +build cgo

// Package regressor loads serialized regression artifacts into invocable
// models (requires CGO and the onnxruntime shared library).
package regressor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"valuation-service/internal/config"
	"valuation-service/internal/domain"
)

// ONNXLoader deserializes ONNX regression artifacts. Every Load opens a fresh
// session so artifact swaps on disk take effect on the next request.
type ONNXLoader struct {
	libraryPath string
	inputName   string
	outputName  string

	initOnce sync.Once
	initErr  error
}

func NewONNXLoader(cfg config.ModelsConfig) *ONNXLoader {
	return &ONNXLoader{
		libraryPath: cfg.ONNXLibraryPath,
		inputName:   cfg.InputName,
		outputName:  cfg.OutputName,
	}
}

// Load creates an inference session for the artifact. The runtime environment
// is initialized lazily on the first load.
func (l *ONNXLoader) Load(ctx context.Context, handle domain.ArtifactHandle) (domain.Regressor, error) {
	if err := l.ensureRuntime(); err != nil {
		return nil, fmt.Errorf("initialize ONNX runtime: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		handle.Path,
		[]string{l.inputName},
		[]string{l.outputName},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("load model artifact %s: %w", handle.Path, err)
	}

	return &onnxModel{session: session}, nil
}

func (l *ONNXLoader) ensureRuntime() error {
	l.initOnce.Do(func() {
		if ort.IsInitialized() {
			return
		}
		if l.libraryPath != "" {
			ort.SetSharedLibraryPath(l.libraryPath)
		}
		l.initErr = ort.InitializeEnvironment()
	})
	return l.initErr
}

type onnxModel struct {
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}

// Predict runs the regressor on a single row of features and returns the one
// value the model emits. Tensors are created per call so arity follows the
// caller's input.
func (m *onnxModel) Predict(features []float64) (float64, error) {
	row := make([]float32, len(features))
	for i, f := range features {
		row[i] = float32(f)
	}

	inputTensor, err := ort.NewTensor(ort.NewShape(1, int64(len(features))), row)
	if err != nil {
		return 0, fmt.Errorf("create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputTensor, err := ort.NewTensor(ort.NewShape(1, 1), make([]float32, 1))
	if err != nil {
		return 0, fmt.Errorf("create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return 0, errors.New("model artifact already closed")
	}

	if err := m.session.Run(
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
	); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	return float64(outputTensor.GetData()[0]), nil
}

func (m *onnxModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	err := m.session.Destroy()
	m.session = nil
	return err
}
