package command_test

import (
	"context"
	"fmt"
	"io"
	commandMock "pyswitch/mocks/pyswitch/system/command"
	"pyswitch/system/command"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewShellCommand(t *testing.T) {
	assert := assert.New(t)

	type args struct {
		name           string
		args           []string
		envVars        []string
		inheritEnvVars bool
	}
	testArgs := args{
		name:           "update-alternatives",
		args:           []string{"--set", "python3", "/usr/bin/python3.11"},
		envVars:        []string{"PATH=/usr/bin"},
		inheritEnvVars: true,
	}
	shellCmd := command.NewShellCommand(testArgs.name, testArgs.args, testArgs.envVars, testArgs.inheritEnvVars)

	assert.Equal(testArgs.name, shellCmd.GetName())
	assert.Equal(testArgs.args, shellCmd.GetArgs())
	assert.Equal(testArgs.envVars, shellCmd.GetEnvVars())
	assert.Equal(testArgs.inheritEnvVars, shellCmd.GetInheritEnvVars())
	assert.NotNil(shellCmd.GetContext())
	assert.NotNil(shellCmd.GetExecutor())
	assert.IsType(&command.ShellCommand{}, shellCmd)
	expectedCommand := strings.TrimSpace(testArgs.name + " " + strings.Join(testArgs.args[:], " "))
	if !strings.HasSuffix(shellCmd.String(), expectedCommand) {
		t.Errorf("Command string = %s, want suffix %s", shellCmd.String(), expectedCommand)
	}
}

func TestShellCommand_Run(t *testing.T) {
	assert := assert.New(t)

	type executorSetup struct {
		start error
		wait  error
	}
	tests := []struct {
		name           string
		cmdSetup       executorSetup
		cmdSetupFunc   func(*testing.T, executorSetup) command.ShellCommandExecutor
		ctxSetupFunc   func(*testing.T) command.ShellCommandContexter
		wantErr        bool
		wantErrMessage string
	}{
		{
			name: "success",
			cmdSetupFunc: func(t *testing.T, setup executorSetup) command.ShellCommandExecutor {
				mockExecutor := commandMock.NewMockShellCommandExecutor(t)
				mockExecutor.EXPECT().Start().Return(setup.start)
				mockExecutor.EXPECT().Wait().Return(setup.wait)
				mockExecutor.EXPECT().String().Return("apt-get update -y -q")
				return mockExecutor
			},
			ctxSetupFunc: func(t *testing.T) command.ShellCommandContexter {
				mockContext := commandMock.NewMockShellCommandContexter(t)
				mockContext.EXPECT().Done().Return(context.Background().Done())
				return mockContext
			},
			wantErr: false,
		},
		{
			name: "failed to start",
			cmdSetup: executorSetup{
				start: fmt.Errorf("generic error"),
			},
			cmdSetupFunc: func(t *testing.T, setup executorSetup) command.ShellCommandExecutor {
				mockExecutor := commandMock.NewMockShellCommandExecutor(t)
				mockExecutor.EXPECT().Start().Return(setup.start)
				mockExecutor.EXPECT().String().Return("apt-get update -y -q")
				return mockExecutor
			},
			ctxSetupFunc: func(t *testing.T) command.ShellCommandContexter {
				return commandMock.NewMockShellCommandContexter(t)
			},
			wantErr:        true,
			wantErrMessage: "failed to start command 'apt-get update -y -q'",
		},
		{
			name: "failed execution",
			cmdSetup: executorSetup{
				wait: fmt.Errorf("exit status 100"),
			},
			cmdSetupFunc: func(t *testing.T, setup executorSetup) command.ShellCommandExecutor {
				mockExecutor := commandMock.NewMockShellCommandExecutor(t)
				mockExecutor.EXPECT().Start().Return(setup.start)
				mockExecutor.EXPECT().Wait().Return(setup.wait)
				mockExecutor.EXPECT().String().Return("apt-get update -y -q")
				return mockExecutor
			},
			ctxSetupFunc: func(t *testing.T) command.ShellCommandContexter {
				mockContext := commandMock.NewMockShellCommandContexter(t)
				mockContext.EXPECT().Done().Return(context.Background().Done())
				return mockContext
			},
			wantErr:        true,
			wantErrMessage: "command 'apt-get update -y -q' failed: exit status 100",
		},
		{
			name: "interrupted",
			cmdSetupFunc: func(t *testing.T, setup executorSetup) command.ShellCommandExecutor {
				mockExecutor := commandMock.NewMockShellCommandExecutor(t)
				mockExecutor.EXPECT().Start().Return(nil)
				mockExecutor.EXPECT().Wait().Return(fmt.Errorf("signal: terminated"))
				mockExecutor.EXPECT().String().Return("apt-get update -y -q")
				return mockExecutor
			},
			ctxSetupFunc: func(t *testing.T) command.ShellCommandContexter {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				mockContext := commandMock.NewMockShellCommandContexter(t)
				mockContext.EXPECT().Done().Return(ctx.Done())
				mockContext.EXPECT().Err().Return(ctx.Err())
				return mockContext
			},
			wantErr:        true,
			wantErrMessage: "context canceled",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shellCmd := &command.ShellCommand{
				Name: "apt-get",
				Args: []string{"update", "-y", "-q"},
				Ctx:  tt.ctxSetupFunc(t),
				Cmd:  tt.cmdSetupFunc(t, tt.cmdSetup),
			}

			err := shellCmd.Run()
			if tt.wantErr {
				assert.Error(err)
				assert.ErrorContains(err, tt.wantErrMessage)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func TestShellCommand_RunReleasesSignals(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name     string
		startErr error
		wantErr  bool
	}{
		{name: "finished", startErr: nil, wantErr: false},
		{name: "failed to start", startErr: fmt.Errorf("executable file not found in $PATH"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExecutor := commandMock.NewMockShellCommandExecutor(t)
			mockExecutor.EXPECT().Start().Return(tt.startErr)
			mockExecutor.EXPECT().Wait().Return(nil).Maybe()
			mockExecutor.EXPECT().String().Return("pip --version")

			mockContext := commandMock.NewMockShellCommandContexter(t)
			mockContext.EXPECT().Done().Return(context.Background().Done()).Maybe()

			stops := 0
			shellCmd := &command.ShellCommand{
				Name: "pip",
				Args: []string{"--version"},
				Ctx:  mockContext,
				Cmd:  mockExecutor,
				Stop: func() { stops++ },
			}

			err := shellCmd.Run()
			assert.Equal(tt.wantErr, err != nil)
			assert.Equal(1, stops)
		})
	}
}

func TestNewShellCommand_signalRelease(t *testing.T) {
	assert := assert.New(t)

	runner := command.NewShellCommand("true", nil, nil, true)
	shellCmd, ok := runner.(*command.ShellCommand)
	assert.True(ok)
	assert.NotNil(shellCmd.Stop)

	shellCmd.Stop()
	<-shellCmd.Ctx.Done()
}

func TestShellCommand_Output(t *testing.T) {
	assert := assert.New(t)

	mockExecutor := commandMock.NewMockShellCommandExecutor(t)
	mockExecutor.EXPECT().SetStdout(mock.Anything).Run(func(w io.Writer) {
		_, _ = w.Write([]byte("Python 3.11.9\n"))
	})
	mockExecutor.EXPECT().Start().Return(nil)
	mockExecutor.EXPECT().Wait().Return(nil)
	mockExecutor.EXPECT().String().Return("python3 --version")

	mockContext := commandMock.NewMockShellCommandContexter(t)
	mockContext.EXPECT().Done().Return(context.Background().Done())

	shellCmd := &command.ShellCommand{
		Name: "python3",
		Args: []string{"--version"},
		Ctx:  mockContext,
		Cmd:  mockExecutor,
	}

	out, err := shellCmd.Output()
	assert.NoError(err)
	assert.Equal("Python 3.11.9\n", out)
}
