package service

import (
	"fmt"

	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/metrics"
)

const TaskWorker = "TaskWorker"

func (use *PhotoServiceImplement) taskWorker(i int) {
	defer use.wg.Done()
	for {
		select {
		case task, ok := <-use.Task_queue:
			if !ok {
				return
			}
			metrics.PhotoTaskQueueSize.Set(float64(len(use.Task_queue)))
			task()
		case <-use.closechan:
			use.drain(i)
			return
		}
	}
}

// drain runs what is still queued so accepted uploads keep their side work.
func (use *PhotoServiceImplement) drain(i int) {
	for {
		select {
		case task := <-use.Task_queue:
			task()
		default:
			use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, TaskWorker, "", fmt.Sprintf("Worker %d stopped", i))
			return
		}
	}
}
func (use *PhotoServiceImplement) StopWorkers() {
	if use.closechan == nil {
		return
	}
	close(use.closechan)
	use.wg.Wait()
	use.Logproducer.NewPhotoLog(kafka.LogLevelInfo, TaskWorker, "", "Successful stop task-workers")
}
