// Package response measures node graphs from the outside: it drives a
// ugen.Source at the head of a graph, pulls the graph's output node and
// analyses what comes out.
//
//   - [Impulse] captures an impulse response.
//   - [NewSpectrum] turns an impulse response into a magnitude response
//     with algo-fft.
//   - [ToneLevelDB] measures the steady-state gain at one frequency with a
//     Goertzel analyser.
package response
