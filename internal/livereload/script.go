package livereload

// ClientScript connects to the hub and reloads the page on "reload". It is
// inlined by the layout with the request nonce.
const ClientScript = `(function () {
  var retries = 0;
  function connect() {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "` + Path + `");
    ws.onopen = function () { retries = 0; };
    ws.onmessage = function (event) {
      try {
        var msg = JSON.parse(event.data);
        if (msg.type === "reload") { location.reload(); }
      } catch (e) {}
    };
    ws.onclose = function () {
      if (retries++ < 10) { setTimeout(connect, Math.min(1000 * retries, 5000)); }
    };
  }
  connect();
})();`
